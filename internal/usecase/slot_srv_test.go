package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"turf-booking/internal/data/entity"
	"turf-booking/internal/dto/request"
	"turf-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newSlotService(f *bookingFixture) TimeSlotService {
	log := zap.NewNop()
	pricing := NewPricingService(f.repo, log)
	config := &utils.Config{Booking: utils.BookingConfig{WindowDays: 10}}
	return NewTimeSlotService(f.repo, pricing, config, log)
}

func TestCreateSlotRejectsOverlap(t *testing.T) {
	f := newBookingFixture(t)
	service := newSlotService(f)
	ctx := context.Background()

	// Fixture already has a 17:00-18:00 slot.
	_, err := service.CreateSlot(ctx, f.turf.ID.String(), &request.TimeSlotRequest{
		StartTime:     "17:30",
		EndTime:       "18:30",
		DaysAvailable: []int{0, 1, 2, 3, 4, 5, 6},
	})
	if err == nil {
		t.Error("expected error for slot overlapping an existing one")
	}

	// Adjacent is fine.
	if _, err := service.CreateSlot(ctx, f.turf.ID.String(), &request.TimeSlotRequest{
		StartTime:     "19:00",
		EndTime:       "20:00",
		DaysAvailable: []int{5, 6},
	}); err != nil {
		t.Errorf("adjacent slot rejected: %v", err)
	}
}

func TestCreateSlotInvalidInterval(t *testing.T) {
	f := newBookingFixture(t)
	service := newSlotService(f)
	ctx := context.Background()

	_, err := service.CreateSlot(ctx, f.turf.ID.String(), &request.TimeSlotRequest{
		StartTime:     "20:00",
		EndTime:       "20:00",
		DaysAvailable: []int{1},
	})
	if !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("expected ErrInvalidInterval, got %v", err)
	}
}

func TestListBookableSlots(t *testing.T) {
	f := newBookingFixture(t)
	service := newSlotService(f)
	ctx := context.Background()

	slots, err := service.ListBookableSlots(ctx, f.turf.ID.String(), f.sport.ID.String(), f.date)
	if err != nil {
		t.Fatalf("ListBookableSlots failed: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("got %d slots, want 2", len(slots))
	}
	for _, slot := range slots {
		if slot.Price != 1200 {
			t.Errorf("slot %s price = %v, want base 1200", slot.SlotID, slot.Price)
		}
	}
}

func TestListBookableSlotsHidesBooked(t *testing.T) {
	f := newBookingFixture(t)
	service := newSlotService(f)
	ctx := context.Background()

	if _, err := f.service.CreateBooking(ctx, f.bookingReq("17:00", "18:00")); err != nil {
		t.Fatal(err)
	}

	slots, err := service.ListBookableSlots(ctx, f.turf.ID.String(), f.sport.ID.String(), f.date)
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 1 {
		t.Fatalf("got %d slots, want 1 after booking", len(slots))
	}
	if slots[0].StartTime != "18:00" {
		t.Errorf("remaining slot starts at %s, want 18:00", slots[0].StartTime)
	}
}

func TestListBookableSlotsHidesSwitchedOff(t *testing.T) {
	f := newBookingFixture(t)
	service := newSlotService(f)
	ctx := context.Background()

	all, err := f.repo.TimeSlot.FindByTurfID(ctx, f.turf.ID)
	if err != nil {
		t.Fatal(err)
	}
	for _, slot := range all {
		if slot.StartMinute == 18*60 {
			if err := f.repo.TimeSlot.SetAvailability(ctx, slot.ID, false); err != nil {
				t.Fatal(err)
			}
		}
	}

	slots, err := service.ListBookableSlots(ctx, f.turf.ID.String(), f.sport.ID.String(), f.date)
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 1 {
		t.Fatalf("got %d slots, want 1 after switching one off", len(slots))
	}
}

func TestListBookableSlotsHonorsRecurrence(t *testing.T) {
	f := newBookingFixture(t)
	service := newSlotService(f)
	ctx := context.Background()

	// A slot that recurs only on a different weekday than the queried date.
	day, _ := utils.ParseDate(f.date)
	other := (int(day.Weekday()) + 1) % 7
	slot := &entity.TimeSlot{
		Base:          entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		TurfID:        f.turf.ID,
		StartMinute:   20 * 60,
		EndMinute:     21 * 60,
		IsAvailable:   true,
		DaysAvailable: []int32{int32(other)},
	}
	if err := f.repo.TimeSlot.Create(ctx, slot); err != nil {
		t.Fatal(err)
	}

	slots, err := service.ListBookableSlots(ctx, f.turf.ID.String(), f.sport.ID.String(), f.date)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range slots {
		if s.SlotID == slot.ID.String() {
			t.Error("slot listed on a weekday it does not recur on")
		}
	}
}

func TestListBookableSlotsOutsideWindow(t *testing.T) {
	f := newBookingFixture(t)
	service := newSlotService(f)
	ctx := context.Background()

	far := time.Now().UTC().AddDate(0, 0, 60).Format("2006-01-02")
	slots, err := service.ListBookableSlots(ctx, f.turf.ID.String(), f.sport.ID.String(), far)
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 0 {
		t.Errorf("got %d slots beyond the window, want 0", len(slots))
	}
}

func TestSetAvailabilityUnknownSlot(t *testing.T) {
	f := newBookingFixture(t)
	service := newSlotService(f)
	ctx := context.Background()

	off := false
	_, err := service.SetAvailability(ctx, uuid.NewString(), &request.SlotAvailabilityRequest{IsAvailable: &off})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
