package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Booking reserves a turf for one sport on a concrete date over the
// half-open interval [StartMinute, EndMinute). Turf and sport are weak
// references, historical bookings survive catalog deletes.
type Booking struct {
	Base
	Reference     string        `db:"reference"`
	UserID        uuid.UUID     `db:"user_id"`
	TurfID        uuid.UUID     `db:"turf_id"`
	SportID       uuid.UUID     `db:"sport_id"`
	Date          time.Time     `db:"date"`
	StartMinute   int           `db:"start_minute"`
	EndMinute     int           `db:"end_minute"`
	TotalAmount   float64       `db:"total_amount"`
	Status        BookingStatus `db:"status"`
	PaymentStatus PaymentStatus `db:"payment_status"`
}
