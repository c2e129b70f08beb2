package entity

import (
	"github.com/google/uuid"
)

// TimeSlot is an owner-configured recurring booking window. Start and end
// are minutes since midnight on the same day, start < end. IsAvailable is
// the owner's on/off switch and is independent of existing bookings.
type TimeSlot struct {
	Base
	TurfID        uuid.UUID `db:"turf_id"`
	StartMinute   int       `db:"start_minute"`
	EndMinute     int       `db:"end_minute"`
	IsAvailable   bool      `db:"is_available"`
	DaysAvailable []int32   `db:"days_available"`
}

// RecursOn reports whether the slot recurs on the given weekday (0=Sunday).
func (s *TimeSlot) RecursOn(weekday int) bool {
	for _, d := range s.DaysAvailable {
		if int(d) == weekday {
			return true
		}
	}
	return false
}
