package usecase

import (
	"errors"
	"testing"
	"time"

	"turf-booking/internal/data/entity"

	"github.com/google/uuid"
)

func newRange(startDay, endDay int, price float64, position int) *entity.PriceRange {
	return &entity.PriceRange{
		BaseSimple:   entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		StartDay:     startDay,
		EndDay:       endDay,
		PricePerHour: price,
		Position:     position,
	}
}

func TestDayInRange(t *testing.T) {
	tests := []struct {
		name     string
		startDay int
		endDay   int
		target   int
		want     bool
	}{
		{"single day match", 3, 3, 3, true},
		{"single day miss", 3, 3, 4, false},
		{"forward range inside", 1, 5, 3, true},
		{"forward range start", 1, 5, 1, true},
		{"forward range end", 1, 5, 5, true},
		{"forward range outside", 1, 5, 0, false},
		{"wraparound covers saturday", 5, 1, 6, true},
		{"wraparound covers sunday", 5, 1, 0, true},
		{"wraparound covers monday", 5, 1, 1, true},
		{"wraparound excludes wednesday", 5, 1, 3, false},
		{"full week via wrap", 0, 6, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dayInRange(tt.startDay, tt.endDay, tt.target); got != tt.want {
				t.Errorf("dayInRange(%d, %d, %d) = %v, want %v",
					tt.startDay, tt.endDay, tt.target, got, tt.want)
			}
		})
	}
}

func TestRangeDays(t *testing.T) {
	got := rangeDays(5, 1) // Fri..Mon
	want := []int{5, 6, 0, 1}
	if len(got) != len(want) {
		t.Fatalf("rangeDays(5, 1) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rangeDays(5, 1)[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestResolvePricePerHour(t *testing.T) {
	// Football at Green Field Turf: Mon-Wed 1000, Thu-Sat 1500, Sun 1800.
	ranges := []*entity.PriceRange{
		newRange(1, 3, 1000, 0),
		newRange(4, 6, 1500, 1),
		newRange(0, 0, 1800, 2),
	}

	tests := []struct {
		name    string
		weekday int
		want    float64
	}{
		{"monday", 1, 1000},
		{"wednesday", 3, 1000},
		{"thursday", 4, 1500},
		{"saturday", 6, 1500},
		{"sunday", 0, 1800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolvePricePerHour(ranges, tt.weekday, 500); got != tt.want {
				t.Errorf("resolvePricePerHour(weekday=%d) = %v, want %v", tt.weekday, got, tt.want)
			}
		})
	}
}

func TestResolvePricePerHourFallback(t *testing.T) {
	ranges := []*entity.PriceRange{newRange(1, 3, 1000, 0)}

	// Friday is not covered, base price applies.
	if got := resolvePricePerHour(ranges, 5, 750); got != 750 {
		t.Errorf("uncovered day = %v, want base 750", got)
	}

	// No ranges at all, base price applies everywhere.
	if got := resolvePricePerHour(nil, 2, 750); got != 750 {
		t.Errorf("no ranges = %v, want base 750", got)
	}
}

func TestResolvePricePerHourFirstMatchWins(t *testing.T) {
	// Two ranges both covering Wednesday; stored order decides.
	ranges := []*entity.PriceRange{
		newRange(1, 5, 1200, 0),
		newRange(3, 3, 9999, 1),
	}

	if got := resolvePricePerHour(ranges, 3, 500); got != 1200 {
		t.Errorf("first match = %v, want 1200", got)
	}
}

func TestQuoteAmount(t *testing.T) {
	tests := []struct {
		name         string
		pricePerHour float64
		startMinute  int
		endMinute    int
		want         float64
		wantErr      bool
	}{
		{"two full hours", 1500, 17 * 60, 19 * 60, 3000, false},
		{"one hour", 1000, 10 * 60, 11 * 60, 1000, false},
		{"half hour pro rata", 1000, 10 * 60, 10*60 + 30, 500, false},
		{"ninety minutes", 1200, 18 * 60, 19*60 + 30, 1800, false},
		{"zero length interval", 1000, 600, 600, 0, true},
		{"inverted interval", 1000, 660, 600, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := quoteAmount(tt.pricePerHour, tt.startMinute, tt.endMinute)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInterval) {
					t.Fatalf("expected ErrInvalidInterval, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("quoteAmount = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuoteAmountLinearity(t *testing.T) {
	// Pricing an interval in two halves must equal pricing it whole.
	whole, err := quoteAmount(1300, 17*60, 19*60)
	if err != nil {
		t.Fatal(err)
	}
	first, _ := quoteAmount(1300, 17*60, 18*60)
	second, _ := quoteAmount(1300, 18*60, 19*60)

	if first+second != whole {
		t.Errorf("split pricing %v + %v != whole %v", first, second, whole)
	}
}

func TestIntervalsOverlap(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{"disjoint", 600, 660, 720, 780, false},
		{"adjacent back to back", 17 * 60, 18 * 60, 18 * 60, 19 * 60, false},
		{"partial overlap", 17 * 60, 18 * 60, 17*60 + 30, 18*60 + 30, true},
		{"contained", 600, 720, 630, 660, true},
		{"identical", 600, 660, 600, 660, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := intervalsOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
				t.Errorf("intervalsOverlap = %v, want %v", got, tt.want)
			}
			// Symmetric by definition.
			if got := intervalsOverlap(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd); got != tt.want {
				t.Errorf("intervalsOverlap (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasBookingConflict(t *testing.T) {
	booked := &entity.Booking{StartMinute: 17 * 60, EndMinute: 18 * 60, Status: entity.BookingStatusConfirmed}
	cancelled := &entity.Booking{StartMinute: 18 * 60, EndMinute: 19 * 60, Status: entity.BookingStatusCancelled}
	bookings := []*entity.Booking{booked, cancelled}

	if !hasBookingConflict(bookings, 17*60+30, 18*60+30) {
		t.Error("expected conflict with confirmed booking")
	}
	if hasBookingConflict(bookings, 18*60, 19*60) {
		t.Error("cancelled booking must not block the interval")
	}
	if hasBookingConflict(bookings, 19*60, 20*60) {
		t.Error("free interval reported as conflicting")
	}
}

func TestCheckPriceRanges(t *testing.T) {
	t.Run("valid disjoint set", func(t *testing.T) {
		ranges := []*entity.PriceRange{
			newRange(1, 3, 1000, 0),
			newRange(4, 6, 1500, 1),
			newRange(0, 0, 1800, 2),
		}
		conflict, err := checkPriceRanges(ranges)
		if err != nil || conflict != nil {
			t.Fatalf("expected no error, got conflict=%v err=%v", conflict, err)
		}
	})

	t.Run("empty set rejected", func(t *testing.T) {
		if _, err := checkPriceRanges(nil); !errors.Is(err, ErrEmptyRangeSet) {
			t.Fatalf("expected ErrEmptyRangeSet, got %v", err)
		}
	})

	t.Run("non-positive price rejected", func(t *testing.T) {
		ranges := []*entity.PriceRange{newRange(1, 3, 0, 0)}
		if _, err := checkPriceRanges(ranges); !errors.Is(err, ErrInvalidPrice) {
			t.Fatalf("expected ErrInvalidPrice, got %v", err)
		}
	})

	t.Run("overlapping days rejected with indices", func(t *testing.T) {
		// Mon-Fri and Fri-Sun both cover Friday.
		ranges := []*entity.PriceRange{
			newRange(1, 5, 1000, 0),
			newRange(5, 0, 1500, 1),
		}
		conflict, err := checkPriceRanges(ranges)
		if !errors.Is(err, ErrOverlappingDays) {
			t.Fatalf("expected ErrOverlappingDays, got %v", err)
		}
		if conflict == nil || conflict.First != 0 || conflict.Second != 1 || conflict.Day != 5 {
			t.Errorf("conflict = %+v, want first=0 second=1 day=5", conflict)
		}
	})

	t.Run("wraparound collision detected", func(t *testing.T) {
		// Sat-Mon wraps through Sunday; Sun-Sun collides with it.
		ranges := []*entity.PriceRange{
			newRange(6, 1, 1000, 0),
			newRange(0, 0, 1800, 1),
		}
		if _, err := checkPriceRanges(ranges); !errors.Is(err, ErrOverlappingDays) {
			t.Fatalf("expected ErrOverlappingDays, got %v", err)
		}
	})
}
