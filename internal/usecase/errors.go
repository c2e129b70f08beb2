package usecase

import "errors"

// Domain errors. All of them are validation outcomes recoverable by the
// caller; none are transient, so the services never retry internally.
var (
	// ErrInvalidInterval: end time is not strictly after start time.
	ErrInvalidInterval = errors.New("end time must be after start time")

	// ErrSlotUnavailable: the requested interval conflicts with an existing
	// booking, or the matching time slot is switched off or does not recur
	// on the requested weekday.
	ErrSlotUnavailable = errors.New("slot is not available for booking")

	// ErrInvalidPrice: a submitted price range has price per hour <= 0.
	ErrInvalidPrice = errors.New("price per hour must be greater than zero")

	// ErrOverlappingDays: two submitted price ranges cover the same weekday.
	ErrOverlappingDays = errors.New("price ranges cover the same weekday more than once")

	// ErrEmptyRangeSet: an explicit replacement submitted with no ranges.
	ErrEmptyRangeSet = errors.New("at least one price range is required")

	// ErrNotFound: unknown turf, sport, slot, booking, poll or user id.
	ErrNotFound = errors.New("not found")
)
