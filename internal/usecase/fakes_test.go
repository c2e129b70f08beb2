package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"turf-booking/internal/data/entity"
	"turf-booking/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes. The booking fake reproduces the guarded
// insert contract: conflict check and insert under one lock, overlap
// reported as repository.ErrOverlap.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type fakeTurfRepo struct {
	mu    sync.Mutex
	turfs map[uuid.UUID]*entity.Turf
}

func newFakeTurfRepo() *fakeTurfRepo {
	return &fakeTurfRepo{turfs: make(map[uuid.UUID]*entity.Turf)}
}

func (f *fakeTurfRepo) Create(ctx context.Context, turf *entity.Turf) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.turfs[turf.ID] = turf
	return nil
}

func (f *fakeTurfRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Turf, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.turfs[id], nil
}

func (f *fakeTurfRepo) FindAll(ctx context.Context, limit, offset int, cityFilter *string) ([]*entity.Turf, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Turf
	for _, t := range f.turfs {
		if cityFilter != nil {
			needle := strings.Trim(*cityFilter, "%")
			if !strings.Contains(strings.ToLower(t.City), strings.ToLower(needle)) {
				continue
			}
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTurfRepo) CountAll(ctx context.Context, cityFilter *string) (int64, error) {
	all, _ := f.FindAll(ctx, 0, 0, cityFilter)
	return int64(len(all)), nil
}

func (f *fakeTurfRepo) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Turf, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Turf
	for _, t := range f.turfs {
		if t.OwnerID == ownerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTurfRepo) Update(ctx context.Context, turf *entity.Turf) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.turfs[turf.ID] = turf
	return nil
}

func (f *fakeTurfRepo) UpdateImageURLs(ctx context.Context, id uuid.UUID, imageURLs []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if t, ok := f.turfs[id]; ok {
		t.ImageURLs = imageURLs
	}
	return nil
}

func (f *fakeTurfRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.turfs, id)
	return nil
}

type fakeSportRepo struct {
	mu     sync.Mutex
	sports map[uuid.UUID]*entity.Sport
}

func newFakeSportRepo() *fakeSportRepo {
	return &fakeSportRepo{sports: make(map[uuid.UUID]*entity.Sport)}
}

func (f *fakeSportRepo) Create(ctx context.Context, sport *entity.Sport) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sports[sport.ID] = sport
	return nil
}

func (f *fakeSportRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Sport, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sports[id], nil
}

func (f *fakeSportRepo) FindByTurfID(ctx context.Context, turfID uuid.UUID) ([]*entity.Sport, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Sport
	for _, s := range f.sports {
		if s.TurfID == turfID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSportRepo) Update(ctx context.Context, sport *entity.Sport) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sports[sport.ID] = sport
	return nil
}

func (f *fakeSportRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sports, id)
	return nil
}

type fakePriceRangeRepo struct {
	mu     sync.Mutex
	ranges map[uuid.UUID][]*entity.PriceRange // keyed by sport ID
}

func newFakePriceRangeRepo() *fakePriceRangeRepo {
	return &fakePriceRangeRepo{ranges: make(map[uuid.UUID][]*entity.PriceRange)}
}

func (f *fakePriceRangeRepo) FindBySportID(ctx context.Context, sportID uuid.UUID) ([]*entity.PriceRange, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ranges[sportID], nil
}

func (f *fakePriceRangeRepo) ReplaceForSport(ctx context.Context, sportID uuid.UUID, ranges []*entity.PriceRange) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ranges[sportID] = ranges
	return nil
}

func (f *fakePriceRangeRepo) DeleteBySportID(ctx context.Context, sportID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.ranges, sportID)
	return nil
}

type fakeTimeSlotRepo struct {
	mu    sync.Mutex
	slots map[uuid.UUID]*entity.TimeSlot
}

func newFakeTimeSlotRepo() *fakeTimeSlotRepo {
	return &fakeTimeSlotRepo{slots: make(map[uuid.UUID]*entity.TimeSlot)}
}

func (f *fakeTimeSlotRepo) Create(ctx context.Context, slot *entity.TimeSlot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.slots[slot.ID] = slot
	return nil
}

func (f *fakeTimeSlotRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.TimeSlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.slots[id], nil
}

func (f *fakeTimeSlotRepo) FindByTurfID(ctx context.Context, turfID uuid.UUID) ([]*entity.TimeSlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.TimeSlot
	for _, s := range f.slots {
		if s.TurfID == turfID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeTimeSlotRepo) SetAvailability(ctx context.Context, id uuid.UUID, isAvailable bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.slots[id]; ok {
		s.IsAvailable = isAvailable
	}
	return nil
}

func (f *fakeTimeSlotRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.slots, id)
	return nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]*entity.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (f *fakeBookingRepo) CreateGuarded(ctx context.Context, booking *entity.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.TurfID != booking.TurfID || !b.Date.Equal(booking.Date) {
			continue
		}
		if b.Status == entity.BookingStatusCancelled {
			continue
		}
		if b.StartMinute < booking.EndMinute && booking.StartMinute < b.EndMinute {
			return repository.ErrOverlap
		}
	}
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	all, _ := f.FindByUserID(ctx, userID, 0, 0)
	return int64(len(all)), nil
}

func (f *fakeBookingRepo) FindByTurfAndDate(ctx context.Context, turfID uuid.UUID, date time.Time, status *string) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.TurfID != turfID || !b.Date.Equal(date) {
			continue
		}
		if status != nil && string(b.Status) != *status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) FindActiveByTurfAndDate(ctx context.Context, turfID uuid.UUID, date time.Time) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.TurfID == turfID && b.Date.Equal(date) && b.Status != entity.BookingStatusCancelled {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if b, ok := f.bookings[id]; ok {
		b.Status = status
	}
	return nil
}

func (f *fakeBookingRepo) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if b, ok := f.bookings[id]; ok {
		b.PaymentStatus = status
	}
	return nil
}

type fakeReviewRepo struct {
	mu      sync.Mutex
	reviews map[uuid.UUID]*entity.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[uuid.UUID]*entity.Review)}
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reviews[review.ID] = review
	return nil
}

func (f *fakeReviewRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reviews[id], nil
}

func (f *fakeReviewRepo) FindByTurfID(ctx context.Context, turfID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Review
	for _, r := range f.reviews {
		if r.TurfID == turfID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) FindByUserAndTurf(ctx context.Context, userID, turfID uuid.UUID) (*entity.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.reviews {
		if r.UserID == userID && r.TurfID == turfID {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReviewRepo) CountByTurfID(ctx context.Context, turfID uuid.UUID) (int64, error) {
	all, _ := f.FindByTurfID(ctx, turfID, 0, 0)
	return int64(len(all)), nil
}

func (f *fakeReviewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.reviews, id)
	return nil
}

func (f *fakeReviewRepo) GetTurfRatingStats(ctx context.Context, turfID uuid.UUID) (float64, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var sum, count int64
	for _, r := range f.reviews {
		if r.TurfID == turfID {
			sum += int64(r.Rating)
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

type fakeMessageRepo struct {
	mu       sync.Mutex
	messages []*entity.Message
}

func newFakeMessageRepo() *fakeMessageRepo { return &fakeMessageRepo{} }

func (f *fakeMessageRepo) Create(ctx context.Context, message *entity.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeMessageRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*entity.Message(nil), f.messages...), nil
}

func (f *fakeMessageRepo) CountAll(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.messages)), nil
}

type fakePollRepo struct {
	mu    sync.Mutex
	polls map[uuid.UUID]*entity.Poll
}

func newFakePollRepo() *fakePollRepo {
	return &fakePollRepo{polls: make(map[uuid.UUID]*entity.Poll)}
}

func (f *fakePollRepo) Create(ctx context.Context, poll *entity.Poll) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.polls[poll.ID] = poll
	return nil
}

func (f *fakePollRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Poll, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.polls[id], nil
}

func (f *fakePollRepo) FindOpen(ctx context.Context, limit, offset int) ([]*entity.Poll, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Poll
	for _, p := range f.polls {
		if p.Status == entity.PollStatusOpen {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePollRepo) CountOpen(ctx context.Context) (int64, error) {
	all, _ := f.FindOpen(ctx, 0, 0)
	return int64(len(all)), nil
}

func (f *fakePollRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PollStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.polls[id]; ok {
		p.Status = status
	}
	return nil
}

func newFakeRepository() *repository.Repository {
	return &repository.Repository{
		User:       newFakeUserRepo(),
		Turf:       newFakeTurfRepo(),
		Sport:      newFakeSportRepo(),
		PriceRange: newFakePriceRangeRepo(),
		TimeSlot:   newFakeTimeSlotRepo(),
		Booking:    newFakeBookingRepo(),
		Review:     newFakeReviewRepo(),
		Message:    newFakeMessageRepo(),
		Poll:       newFakePollRepo(),
	}
}
