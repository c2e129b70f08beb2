package usecase

import (
	"context"
	"fmt"
	"time"

	"turf-booking/internal/data/entity"
	"turf-booking/internal/data/repository"
	"turf-booking/internal/dto/request"
	"turf-booking/internal/dto/response"
	"turf-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TimeSlotService interface {
	CreateSlot(ctx context.Context, turfID string, req *request.TimeSlotRequest) (*response.TimeSlotResponse, error)
	GetTurfSlots(ctx context.Context, turfID string) ([]*response.TimeSlotResponse, error)
	SetAvailability(ctx context.Context, slotID string, req *request.SlotAvailabilityRequest) (*response.TimeSlotResponse, error)
	DeleteSlot(ctx context.Context, slotID string) error

	// ListBookableSlots returns the slots of a turf still open on a date:
	// switched on, recurring on that weekday, and not overlapped by an
	// active booking. Each entry carries the resolved price for the day.
	ListBookableSlots(ctx context.Context, turfID, sportID, date string) ([]*response.BookableSlotResponse, error)
}

type timeSlotService struct {
	repo    *repository.Repository
	pricing PricingService
	config  *utils.Config
	log     *zap.Logger
}

func NewTimeSlotService(repo *repository.Repository, pricing PricingService, config *utils.Config, log *zap.Logger) TimeSlotService {
	return &timeSlotService{
		repo:    repo,
		pricing: pricing,
		config:  config,
		log:     log.With(zap.String("service", "time_slot")),
	}
}

func (s *timeSlotService) CreateSlot(ctx context.Context, turfID string, req *request.TimeSlotRequest) (*response.TimeSlotResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create slot validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	turfUUID, err := uuid.Parse(turfID)
	if err != nil {
		return nil, fmt.Errorf("invalid turf ID format %s: %w", turfID, err)
	}

	turf, err := s.repo.Turf.FindByID(ctx, turfUUID)
	if err != nil {
		return nil, fmt.Errorf("get turf: %w", err)
	}
	if turf == nil {
		return nil, fmt.Errorf("turf %s: %w", turfID, ErrNotFound)
	}

	startMinute, err := utils.ParseClock(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid start time %s: %w", req.StartTime, err)
	}
	endMinute, err := utils.ParseClock(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid end time %s: %w", req.EndTime, err)
	}
	if endMinute <= startMinute {
		return nil, ErrInvalidInterval
	}

	// A new slot must not overlap an existing one for the same turf.
	existing, err := s.repo.TimeSlot.FindByTurfID(ctx, turfUUID)
	if err != nil {
		return nil, fmt.Errorf("get turf slots: %w", err)
	}
	for _, slot := range existing {
		if intervalsOverlap(slot.StartMinute, slot.EndMinute, startMinute, endMinute) {
			return nil, fmt.Errorf("slot overlaps existing slot %s-%s",
				utils.FormatClock(slot.StartMinute), utils.FormatClock(slot.EndMinute))
		}
	}

	days := make([]int32, len(req.DaysAvailable))
	for i, d := range req.DaysAvailable {
		days[i] = int32(d)
	}

	now := time.Now()
	slot := &entity.TimeSlot{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		TurfID:        turfUUID,
		StartMinute:   startMinute,
		EndMinute:     endMinute,
		IsAvailable:   true,
		DaysAvailable: days,
	}

	if err := s.repo.TimeSlot.Create(ctx, slot); err != nil {
		s.log.Error("Failed to create slot", zap.Error(err), zap.String("turf_id", turfID))
		return nil, fmt.Errorf("create slot: %w", err)
	}

	s.log.Info("Slot created",
		zap.String("slot_id", slot.ID.String()),
		zap.String("turf_id", turfID),
		zap.String("start", req.StartTime),
		zap.String("end", req.EndTime),
	)

	resp := response.TimeSlotToResponse(slot)
	return &resp, nil
}

func (s *timeSlotService) GetTurfSlots(ctx context.Context, turfID string) ([]*response.TimeSlotResponse, error) {
	turfUUID, err := uuid.Parse(turfID)
	if err != nil {
		return nil, fmt.Errorf("invalid turf ID format %s: %w", turfID, err)
	}

	slots, err := s.repo.TimeSlot.FindByTurfID(ctx, turfUUID)
	if err != nil {
		return nil, fmt.Errorf("get turf slots: %w", err)
	}

	resp := make([]*response.TimeSlotResponse, len(slots))
	for i, slot := range slots {
		r := response.TimeSlotToResponse(slot)
		resp[i] = &r
	}
	return resp, nil
}

func (s *timeSlotService) SetAvailability(ctx context.Context, slotID string, req *request.SlotAvailabilityRequest) (*response.TimeSlotResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(slotID)
	if err != nil {
		return nil, fmt.Errorf("invalid slot ID format %s: %w", slotID, err)
	}

	slot, err := s.repo.TimeSlot.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}
	if slot == nil {
		return nil, fmt.Errorf("slot %s: %w", slotID, ErrNotFound)
	}

	if err := s.repo.TimeSlot.SetAvailability(ctx, id, *req.IsAvailable); err != nil {
		return nil, fmt.Errorf("set slot availability: %w", err)
	}
	slot.IsAvailable = *req.IsAvailable

	s.log.Info("Slot availability changed",
		zap.String("slot_id", slotID),
		zap.Bool("is_available", slot.IsAvailable),
	)

	resp := response.TimeSlotToResponse(slot)
	return &resp, nil
}

func (s *timeSlotService) DeleteSlot(ctx context.Context, slotID string) error {
	id, err := uuid.Parse(slotID)
	if err != nil {
		return fmt.Errorf("invalid slot ID format %s: %w", slotID, err)
	}

	slot, err := s.repo.TimeSlot.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get slot: %w", err)
	}
	if slot == nil {
		return fmt.Errorf("slot %s: %w", slotID, ErrNotFound)
	}

	if err := s.repo.TimeSlot.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}

	s.log.Info("Slot deleted", zap.String("slot_id", slotID))
	return nil
}

func (s *timeSlotService) ListBookableSlots(ctx context.Context, turfID, sportID, date string) ([]*response.BookableSlotResponse, error) {
	turfUUID, err := uuid.Parse(turfID)
	if err != nil {
		return nil, fmt.Errorf("invalid turf ID format %s: %w", turfID, err)
	}

	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %s: %w", date, err)
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	horizon := today.AddDate(0, 0, s.config.Booking.WindowDays)
	if day.Before(today) || day.After(horizon) {
		return []*response.BookableSlotResponse{}, nil
	}

	slots, err := s.repo.TimeSlot.FindByTurfID(ctx, turfUUID)
	if err != nil {
		return nil, fmt.Errorf("get turf slots: %w", err)
	}

	bookings, err := s.repo.Booking.FindActiveByTurfAndDate(ctx, turfUUID, day)
	if err != nil {
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	weekday := int(day.Weekday())
	available := make([]*response.BookableSlotResponse, 0, len(slots))
	for _, slot := range slots {
		if !slot.IsAvailable || !slot.RecursOn(weekday) {
			continue
		}
		if hasBookingConflict(bookings, slot.StartMinute, slot.EndMinute) {
			continue
		}

		quote, err := s.pricing.CalculateQuote(ctx, &request.QuoteRequest{
			SportID:   sportID,
			Date:      date,
			StartTime: utils.FormatClock(slot.StartMinute),
			EndTime:   utils.FormatClock(slot.EndMinute),
		})
		if err != nil {
			return nil, err
		}

		available = append(available, &response.BookableSlotResponse{
			SlotID:    slot.ID.String(),
			Date:      date,
			StartTime: utils.FormatClock(slot.StartMinute),
			EndTime:   utils.FormatClock(slot.EndMinute),
			Price:     quote.TotalAmount,
		})
	}

	return available, nil
}
