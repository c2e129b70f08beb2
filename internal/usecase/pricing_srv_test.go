package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"turf-booking/internal/data/entity"
	"turf-booking/internal/data/repository"
	"turf-booking/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type pricingFixture struct {
	repo    *repository.Repository
	service PricingService
	turf    *entity.Turf
	sport   *entity.Sport
}

func newPricingFixture(t *testing.T) *pricingFixture {
	t.Helper()
	ctx := context.Background()
	repo := newFakeRepository()

	now := time.Now()
	turf := &entity.Turf{
		Base:             entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		OwnerID:          uuid.New(),
		Name:             "Green Field Turf",
		City:             "Mumbai",
		BasePricePerHour: 1200,
	}
	if err := repo.Turf.Create(ctx, turf); err != nil {
		t.Fatal(err)
	}

	sport := &entity.Sport{
		Base:   entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		TurfID: turf.ID,
		Name:   "Football",
	}
	if err := repo.Sport.Create(ctx, sport); err != nil {
		t.Fatal(err)
	}

	return &pricingFixture{
		repo:    repo,
		service: NewPricingService(repo, zap.NewNop()),
		turf:    turf,
		sport:   sport,
	}
}

// seedWeekRules installs the Mon-Wed 1000 / Thu-Sat 1500 / Sun 1800 rule set.
func (f *pricingFixture) seedWeekRules(t *testing.T) {
	t.Helper()
	ranges := []*entity.PriceRange{
		{BaseSimple: entity.BaseSimple{ID: uuid.New()}, SportID: f.sport.ID, StartDay: 1, EndDay: 3, PricePerHour: 1000, Position: 0},
		{BaseSimple: entity.BaseSimple{ID: uuid.New()}, SportID: f.sport.ID, StartDay: 4, EndDay: 6, PricePerHour: 1500, Position: 1},
		{BaseSimple: entity.BaseSimple{ID: uuid.New()}, SportID: f.sport.ID, StartDay: 0, EndDay: 0, PricePerHour: 1800, Position: 2},
	}
	if err := f.repo.PriceRange.ReplaceForSport(context.Background(), f.sport.ID, ranges); err != nil {
		t.Fatal(err)
	}
}

// dateForWeekday finds an upcoming calendar date falling on the weekday.
func dateForWeekday(weekday int) string {
	d := time.Now().UTC()
	for int(d.Weekday()) != weekday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}

func TestCalculateQuote(t *testing.T) {
	f := newPricingFixture(t)
	f.seedWeekRules(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		weekday   int
		startTime string
		endTime   string
		want      float64
	}{
		{"saturday two hours", 6, "17:00", "19:00", 3000},
		{"monday one hour", 1, "10:00", "11:00", 1000},
		{"sunday ninety minutes", 0, "18:00", "19:30", 2700},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := f.service.CalculateQuote(ctx, &request.QuoteRequest{
				SportID:   f.sport.ID.String(),
				Date:      dateForWeekday(tt.weekday),
				StartTime: tt.startTime,
				EndTime:   tt.endTime,
			})
			if err != nil {
				t.Fatalf("CalculateQuote failed: %v", err)
			}
			if quote.TotalAmount != tt.want {
				t.Errorf("total = %v, want %v", quote.TotalAmount, tt.want)
			}
			if quote.Weekday != tt.weekday {
				t.Errorf("weekday = %d, want %d", quote.Weekday, tt.weekday)
			}
		})
	}
}

func TestCalculateQuoteBaseFallback(t *testing.T) {
	f := newPricingFixture(t)
	ctx := context.Background()

	// No rules defined, base price 1200 applies.
	quote, err := f.service.CalculateQuote(ctx, &request.QuoteRequest{
		SportID:   f.sport.ID.String(),
		Date:      dateForWeekday(2),
		StartTime: "17:00",
		EndTime:   "18:00",
	})
	if err != nil {
		t.Fatal(err)
	}
	if quote.PricePerHour != 1200 {
		t.Errorf("price per hour = %v, want base 1200", quote.PricePerHour)
	}
}

func TestCalculateQuoteInvalidInterval(t *testing.T) {
	f := newPricingFixture(t)
	ctx := context.Background()

	_, err := f.service.CalculateQuote(ctx, &request.QuoteRequest{
		SportID:   f.sport.ID.String(),
		Date:      dateForWeekday(2),
		StartTime: "18:00",
		EndTime:   "18:00",
	})
	if !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("expected ErrInvalidInterval, got %v", err)
	}
}

func TestCalculateQuoteUnknownSport(t *testing.T) {
	f := newPricingFixture(t)
	ctx := context.Background()

	_, err := f.service.CalculateQuote(ctx, &request.QuoteRequest{
		SportID:   uuid.NewString(),
		Date:      dateForWeekday(2),
		StartTime: "17:00",
		EndTime:   "18:00",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestResolvePrice(t *testing.T) {
	f := newPricingFixture(t)
	f.seedWeekRules(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		weekday int
		want    float64
	}{
		{"monday rule", 1, 1000},
		{"saturday rule", 6, 1500},
		{"sunday rule", 0, 1800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := f.service.ResolvePrice(ctx, f.sport.ID.String(), dateForWeekday(tt.weekday))
			if err != nil {
				t.Fatalf("ResolvePrice failed: %v", err)
			}
			if price.PricePerHour != tt.want {
				t.Errorf("price per hour = %v, want %v", price.PricePerHour, tt.want)
			}
			if price.Weekday != tt.weekday {
				t.Errorf("weekday = %d, want %d", price.Weekday, tt.weekday)
			}
		})
	}
}

func TestResolvePriceBaseFallback(t *testing.T) {
	f := newPricingFixture(t)
	ctx := context.Background()

	price, err := f.service.ResolvePrice(ctx, f.sport.ID.String(), dateForWeekday(4))
	if err != nil {
		t.Fatal(err)
	}
	if price.PricePerHour != 1200 {
		t.Errorf("price per hour = %v, want base 1200", price.PricePerHour)
	}
}

func TestResolvePriceUnknownSport(t *testing.T) {
	f := newPricingFixture(t)
	ctx := context.Background()

	_, err := f.service.ResolvePrice(ctx, uuid.NewString(), dateForWeekday(4))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestReplacePriceRanges(t *testing.T) {
	f := newPricingFixture(t)
	ctx := context.Background()

	ranges, err := f.service.ReplacePriceRanges(ctx, f.sport.ID.String(), &request.ReplacePriceRangesRequest{
		PriceRanges: []request.PriceRangeRequest{
			{StartDay: 1, EndDay: 5, PricePerHour: 1000},
			{StartDay: 6, EndDay: 0, PricePerHour: 1600},
		},
	})
	if err != nil {
		t.Fatalf("ReplacePriceRanges failed: %v", err)
	}
	if len(ranges) != 2 {
		t.Fatalf("got %d ranges, want 2", len(ranges))
	}

	stored, err := f.repo.PriceRange.FindBySportID(ctx, f.sport.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) != 2 || stored[0].Position != 0 || stored[1].Position != 1 {
		t.Errorf("stored ranges out of order: %+v", stored)
	}
}

func TestReplacePriceRangesRejectsOverlap(t *testing.T) {
	f := newPricingFixture(t)
	ctx := context.Background()

	// Mon-Fri and Fri-Sun both cover Friday.
	_, err := f.service.ReplacePriceRanges(ctx, f.sport.ID.String(), &request.ReplacePriceRangesRequest{
		PriceRanges: []request.PriceRangeRequest{
			{StartDay: 1, EndDay: 5, PricePerHour: 1000},
			{StartDay: 5, EndDay: 0, PricePerHour: 1600},
		},
	})
	if !errors.Is(err, ErrOverlappingDays) {
		t.Errorf("expected ErrOverlappingDays, got %v", err)
	}

	// Rejected replacement must not clobber stored rules.
	stored, _ := f.repo.PriceRange.FindBySportID(ctx, f.sport.ID)
	if len(stored) != 0 {
		t.Errorf("rejected replacement was persisted: %+v", stored)
	}
}

func TestReplacePriceRangesRejectsEmpty(t *testing.T) {
	f := newPricingFixture(t)
	ctx := context.Background()

	_, err := f.service.ReplacePriceRanges(ctx, f.sport.ID.String(), &request.ReplacePriceRangesRequest{})
	if !errors.Is(err, ErrEmptyRangeSet) {
		t.Errorf("expected ErrEmptyRangeSet, got %v", err)
	}
}

func TestReplacePriceRangesRejectsNonPositive(t *testing.T) {
	f := newPricingFixture(t)
	ctx := context.Background()

	_, err := f.service.ReplacePriceRanges(ctx, f.sport.ID.String(), &request.ReplacePriceRangesRequest{
		PriceRanges: []request.PriceRangeRequest{
			{StartDay: 1, EndDay: 3, PricePerHour: -100},
		},
	})
	if !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("expected ErrInvalidPrice, got %v", err)
	}
}
