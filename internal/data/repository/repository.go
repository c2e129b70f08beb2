package repository

import (
	"turf-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User       UserRepository
	Turf       TurfRepository
	Sport      SportRepository
	PriceRange PriceRangeRepository
	TimeSlot   TimeSlotRepository
	Booking    BookingRepository
	Review     ReviewRepository
	Message    MessageRepository
	Poll       PollRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:       NewUserRepository(db, log),
		Turf:       NewTurfRepository(db, log),
		Sport:      NewSportRepository(db, log),
		PriceRange: NewPriceRangeRepository(db, log),
		TimeSlot:   NewTimeSlotRepository(db, log),
		Booking:    NewBookingRepository(db, log),
		Review:     NewReviewRepository(db, log),
		Message:    NewMessageRepository(db, log),
		Poll:       NewPollRepository(db, log),
	}
}
