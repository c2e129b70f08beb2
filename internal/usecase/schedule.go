package usecase

import (
	"fmt"

	"turf-booking/internal/data/entity"
)

// Pure scheduling rules: cyclic day-range containment, price resolution,
// quote arithmetic and the half-open interval overlap test. Everything in
// this file is a function of its inputs only.

const daysPerWeek = 7

// dayInRange reports whether target falls inside the closed day interval
// [startDay, endDay], walking forward from startDay modulo 7. A single-day
// range has startDay == endDay and matches only that day. The walk may wrap:
// startDay=6, endDay=0 covers exactly Saturday and Sunday.
func dayInRange(startDay, endDay, target int) bool {
	current := startDay
	for {
		if current == target {
			return true
		}
		if current == endDay {
			return false
		}
		current = (current + 1) % daysPerWeek
	}
}

// rangeDays returns every weekday the interval [startDay, endDay] covers,
// in walk order.
func rangeDays(startDay, endDay int) []int {
	days := make([]int, 0, daysPerWeek)
	current := startDay
	for {
		days = append(days, current)
		if current == endDay {
			return days
		}
		current = (current + 1) % daysPerWeek
	}
}

// resolvePricePerHour returns the hourly price for the weekday. The first
// range in list order that covers the weekday wins; with a valid
// (non-overlapping) rule set there is at most one. Uncovered weekdays fall
// back to the turf's base price.
func resolvePricePerHour(ranges []*entity.PriceRange, weekday int, basePricePerHour float64) float64 {
	for _, pr := range ranges {
		if dayInRange(pr.StartDay, pr.EndDay, weekday) {
			return pr.PricePerHour
		}
	}
	return basePricePerHour
}

// quoteAmount bills the half-open interval [startMinute, endMinute) pro-rata
// by minute, so partial hours cost their exact fraction of the hourly price.
func quoteAmount(pricePerHour float64, startMinute, endMinute int) (float64, error) {
	if endMinute <= startMinute {
		return 0, ErrInvalidInterval
	}
	return pricePerHour * float64(endMinute-startMinute) / 60, nil
}

// intervalsOverlap is the standard half-open overlap test: [aStart, aEnd)
// and [bStart, bEnd) intersect iff aStart < bEnd && bStart < aEnd. Touching
// intervals (aEnd == bStart) do not overlap.
func intervalsOverlap(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// hasBookingConflict scans the turf's non-cancelled bookings for the date
// and reports whether [startMinute, endMinute) collides with any of them.
func hasBookingConflict(bookings []*entity.Booking, startMinute, endMinute int) bool {
	for _, b := range bookings {
		if b.Status == entity.BookingStatusCancelled {
			continue
		}
		if intervalsOverlap(startMinute, endMinute, b.StartMinute, b.EndMinute) {
			return true
		}
	}
	return false
}

// rangeConflict names the two submitted ranges that cover the same weekday.
type rangeConflict struct {
	First  int
	Second int
	Day    int
}

func (c rangeConflict) Error() string {
	return fmt.Sprintf("ranges %d and %d both cover weekday %d", c.First, c.Second, c.Day)
}

// checkPriceRanges validates a proposed replacement rule set: every price
// positive, no weekday covered twice, and at least one range present. The
// returned conflict (if any) carries the indices of the colliding ranges.
func checkPriceRanges(ranges []*entity.PriceRange) (*rangeConflict, error) {
	if len(ranges) == 0 {
		return nil, ErrEmptyRangeSet
	}

	coveredBy := [daysPerWeek]int{}
	for i := range coveredBy {
		coveredBy[i] = -1
	}

	for i, pr := range ranges {
		if pr.PricePerHour <= 0 {
			return nil, fmt.Errorf("range %d: %w", i, ErrInvalidPrice)
		}

		for _, day := range rangeDays(pr.StartDay, pr.EndDay) {
			if prev := coveredBy[day]; prev >= 0 {
				return &rangeConflict{First: prev, Second: i, Day: day}, ErrOverlappingDays
			}
			coveredBy[day] = i
		}
	}

	return nil, nil
}
