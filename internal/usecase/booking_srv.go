package usecase

import (
	"context"
	"errors"
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

type BookingService interface {
	// CreateBooking admits a booking atomically: caller is serialized per
	// (turf, date) in-process, then the insert re-checks conflicts inside
	// a locked transaction. Two overlapping requests can never both land.
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)

	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetTurfBookings(ctx context.Context, turfID, date string, status string) ([]*response.BookingResponse, error)

	ConfirmBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID string) (*response.CancelBookingResponse, error)
	UpdatePaymentStatus(ctx context.Context, bookingID string, req *request.UpdatePaymentStatusRequest) (*response.BookingResponse, error)
}

type bookingService struct {
	repo    *repository.Repository
	pricing PricingService
	config  *utils.Config
	locks   *slotLocks
	log     *zap.Logger
}

func NewBookingService(repo *repository.Repository, pricing PricingService, config *utils.Config, log *zap.Logger) BookingService {
	return &bookingService{
		repo:    repo,
		pricing: pricing,
		config:  config,
		locks:   newSlotLocks(),
		log:     log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", req.UserID, err)
	}
	turfID, err := uuid.Parse(req.TurfID)
	if err != nil {
		return nil, fmt.Errorf("invalid turf ID format %s: %w", req.TurfID, err)
	}
	sportID, err := uuid.Parse(req.SportID)
	if err != nil {
		return nil, fmt.Errorf("invalid sport ID format %s: %w", req.SportID, err)
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil || user == nil {
		return nil, fmt.Errorf("user %s: %w", req.UserID, ErrNotFound)
	}

	sport, err := s.repo.Sport.FindByID(ctx, sportID)
	if err != nil {
		return nil, fmt.Errorf("get sport: %w", err)
	}
	if sport == nil || sport.TurfID != turfID {
		return nil, fmt.Errorf("sport %s: %w", req.SportID, ErrNotFound)
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %s: %w", req.Date, err)
	}
	if err := s.checkBookingWindow(date); err != nil {
		return nil, err
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

	weekday := int(date.Weekday())
	if err := s.checkSlotOffered(ctx, turfID, weekday, startMinute, endMinute); err != nil {
		return nil, err
	}

	// Price on the same path the public quote endpoint uses.
	quote, err := s.pricing.CalculateQuote(ctx, &request.QuoteRequest{
		SportID:   req.SportID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		return nil, err
	}

	// Serialize admissions per (turf, date) so concurrent requests for the
	// same calendar page queue up instead of racing to the database.
	release := s.locks.acquire(turfID, date)
	defer release()

	existing, err := s.repo.Booking.FindActiveByTurfAndDate(ctx, turfID, date)
	if err != nil {
		s.log.Error("Failed to load bookings for conflict check", zap.Error(err))
		return nil, fmt.Errorf("check booking conflicts: %w", err)
	}
	if hasBookingConflict(existing, startMinute, endMinute) {
		return nil, ErrSlotUnavailable
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Reference:     utils.GenerateBookingRef(),
		UserID:        userID,
		TurfID:        turfID,
		SportID:       sportID,
		Date:          date,
		StartMinute:   startMinute,
		EndMinute:     endMinute,
		TotalAmount:   quote.TotalAmount,
		Status:        entity.BookingStatusPending,
		PaymentStatus: entity.PaymentStatusPending,
	}

	if err := s.repo.Booking.CreateGuarded(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrOverlap) {
			return nil, ErrSlotUnavailable
		}
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", req.UserID),
			zap.String("turf_id", req.TurfID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reference", booking.Reference),
		zap.String("turf_id", req.TurfID),
		zap.String("date", req.Date),
		zap.Float64("total_amount", booking.TotalAmount),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// checkBookingWindow rejects dates in the past and dates beyond the
// rolling booking window.
func (s *bookingService) checkBookingWindow(date time.Time) error {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if date.Before(today) {
		return fmt.Errorf("cannot book for a past date")
	}

	horizon := today.AddDate(0, 0, s.config.Booking.WindowDays)
	if date.After(horizon) {
		return fmt.Errorf("date is beyond the %d-day booking window", s.config.Booking.WindowDays)
	}
	return nil
}

// checkSlotOffered verifies that the requested interval matches a slot the
// turf actually offers: exact start and end, switched on, recurring on the
// requested weekday.
func (s *bookingService) checkSlotOffered(ctx context.Context, turfID uuid.UUID, weekday, startMinute, endMinute int) error {
	slots, err := s.repo.TimeSlot.FindByTurfID(ctx, turfID)
	if err != nil {
		return fmt.Errorf("get turf slots: %w", err)
	}

	for _, slot := range slots {
		if slot.StartMinute != startMinute || slot.EndMinute != endMinute {
			continue
		}
		if !slot.IsAvailable || !slot.RecursOn(weekday) {
			return ErrSlotUnavailable
		}
		return nil
	}
	return ErrSlotUnavailable
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	// Names are display-only enrichment; a lookup failure degrades the
	// response instead of failing it, but must not pass silently.
	var turfName, sportName string
	if turf, err := s.repo.Turf.FindByID(ctx, booking.TurfID); err != nil {
		s.log.Warn("Failed to enrich booking with turf name", zap.Error(err), zap.String("turf_id", booking.TurfID.String()))
	} else if turf != nil {
		turfName = turf.Name
	}
	if sport, err := s.repo.Sport.FindByID(ctx, booking.SportID); err != nil {
		s.log.Warn("Failed to enrich booking with sport name", zap.Error(err), zap.String("sport_id", booking.SportID.String()))
	} else if sport != nil {
		sportName = sport.Name
	}

	resp := response.BookingToDetailResponse(booking, turfName, sportName)
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, userUUID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get user bookings", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userUUID)
	if err != nil {
		return nil, fmt.Errorf("count user bookings: %w", err)
	}

	items := make([]response.BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = response.BookingToResponse(b)
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *bookingService) GetTurfBookings(ctx context.Context, turfID, date string, status string) ([]*response.BookingResponse, error) {
	turfUUID, err := uuid.Parse(turfID)
	if err != nil {
		return nil, fmt.Errorf("invalid turf ID format %s: %w", turfID, err)
	}

	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %s: %w", date, err)
	}

	var statusFilter *string
	if status != "" {
		switch entity.BookingStatus(status) {
		case entity.BookingStatusPending, entity.BookingStatusConfirmed, entity.BookingStatusCancelled:
			statusFilter = &status
		default:
			return nil, fmt.Errorf("invalid booking status %q", status)
		}
	}

	bookings, err := s.repo.Booking.FindByTurfAndDate(ctx, turfUUID, day, statusFilter)
	if err != nil {
		s.log.Error("Failed to get turf bookings", zap.Error(err), zap.String("turf_id", turfID))
		return nil, fmt.Errorf("get turf bookings: %w", err)
	}

	resp := make([]*response.BookingResponse, len(bookings))
	for i, b := range bookings {
		r := response.BookingToResponse(b)
		resp[i] = &r
	}
	return resp, nil
}

func (s *bookingService) ConfirmBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status == entity.BookingStatusCancelled {
		return nil, fmt.Errorf("cannot confirm a cancelled booking")
	}

	if booking.Status != entity.BookingStatusConfirmed {
		if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusConfirmed); err != nil {
			return nil, fmt.Errorf("confirm booking: %w", err)
		}
		booking.Status = entity.BookingStatusConfirmed
		s.log.Info("Booking confirmed", zap.String("booking_id", bookingID))
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// CancelBooking is idempotent: cancelling an already cancelled booking
// returns the same terminal state. Completed payments are not mutated; the
// response flags that a refund is owed and the owner settles it offline.
func (s *bookingService) CancelBooking(ctx context.Context, bookingID string) (*response.CancelBookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	refundDue := booking.PaymentStatus == entity.PaymentStatusCompleted

	if booking.Status != entity.BookingStatusCancelled {
		if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusCancelled); err != nil {
			return nil, fmt.Errorf("cancel booking: %w", err)
		}
		booking.Status = entity.BookingStatusCancelled

		s.log.Info("Booking cancelled",
			zap.String("booking_id", bookingID),
			zap.Bool("refund_due", refundDue),
		)
	}

	return &response.CancelBookingResponse{
		BookingResponse: response.BookingToResponse(booking),
		RefundDue:       refundDue,
	}, nil
}

func (s *bookingService) UpdatePaymentStatus(ctx context.Context, bookingID string, req *request.UpdatePaymentStatusRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status == entity.BookingStatusCancelled {
		return nil, fmt.Errorf("cannot update payment on a cancelled booking")
	}

	status := entity.PaymentStatus(req.PaymentStatus)
	if err := s.repo.Booking.UpdatePaymentStatus(ctx, booking.ID, status); err != nil {
		return nil, fmt.Errorf("update payment status: %w", err)
	}
	booking.PaymentStatus = status

	// A completed payment locks the reservation in.
	if status == entity.PaymentStatusCompleted && booking.Status == entity.BookingStatusPending {
		if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusConfirmed); err != nil {
			return nil, fmt.Errorf("confirm booking after payment: %w", err)
		}
		booking.Status = entity.BookingStatusConfirmed
	}

	s.log.Info("Payment status updated",
		zap.String("booking_id", bookingID),
		zap.String("payment_status", req.PaymentStatus),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) findBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID, ErrNotFound)
	}
	return booking, nil
}
