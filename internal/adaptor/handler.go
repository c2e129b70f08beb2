package adaptor

import (
	"turf-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	User      *UserHandler
	Turf      *TurfHandler
	Sport     *SportHandler
	Slot      *SlotHandler
	Booking   *BookingHandler
	Review    *ReviewHandler
	Community *CommunityHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		User:      NewUserHandler(service.User, log),
		Turf:      NewTurfHandler(service.Turf, log),
		Sport:     NewSportHandler(service.Sport, service.Pricing, log),
		Slot:      NewSlotHandler(service.TimeSlot, log),
		Booking:   NewBookingHandler(service.Booking, service.Pricing, log),
		Review:    NewReviewHandler(service.Review, log),
		Community: NewCommunityHandler(service.Community, log),
	}
}
