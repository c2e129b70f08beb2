package usecase

import (
	"turf-booking/internal/data/repository"
	"turf-booking/pkg/uploader"
	"turf-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	User      UserService
	Turf      TurfService
	Sport     SportService
	Pricing   PricingService
	TimeSlot  TimeSlotService
	Booking   BookingService
	Review    ReviewService
	Community CommunityService
}

func NewService(repo *repository.Repository, config *utils.Config, upload uploader.Uploader, log *zap.Logger) *Service {
	pricing := NewPricingService(repo, log)

	return &Service{
		User:      NewUserService(repo.User, log),
		Turf:      NewTurfService(repo, upload, log),
		Sport:     NewSportService(repo, log),
		Pricing:   pricing,
		TimeSlot:  NewTimeSlotService(repo, pricing, config, log),
		Booking:   NewBookingService(repo, pricing, config, log),
		Review:    NewReviewService(repo, log),
		Community: NewCommunityService(repo, log),
	}
}
