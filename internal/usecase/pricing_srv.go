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

type PricingService interface {
	// CalculateQuote prices an interval for a sport on a date without
	// touching availability. The same path is used internally by the
	// booking flow so a quote and the booked amount can never diverge.
	CalculateQuote(ctx context.Context, req *request.QuoteRequest) (*response.QuoteResponse, error)

	// ResolvePrice returns the effective hourly price for a sport on a
	// date, after day-range rules and the base-price fallback.
	ResolvePrice(ctx context.Context, sportID, date string) (*response.ResolvedPriceResponse, error)

	GetPriceRanges(ctx context.Context, sportID string) ([]*response.PriceRangeResponse, error)
	ReplacePriceRanges(ctx context.Context, sportID string, req *request.ReplacePriceRangesRequest) ([]*response.PriceRangeResponse, error)
}

type pricingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPricingService(repo *repository.Repository, log *zap.Logger) PricingService {
	return &pricingService{
		repo: repo,
		log:  log.With(zap.String("service", "pricing")),
	}
}

// priceForSportOn resolves the effective hourly price for a sport on a
// given weekday: first matching range in stored order wins, base price of
// the turf is the fallback when no range covers the day.
func (s *pricingService) priceForSportOn(ctx context.Context, sport *entity.Sport, weekday int) (float64, error) {
	turf, err := s.repo.Turf.FindByID(ctx, sport.TurfID)
	if err != nil {
		return 0, fmt.Errorf("get turf %s: %w", sport.TurfID, err)
	}
	if turf == nil {
		return 0, fmt.Errorf("turf %s: %w", sport.TurfID, ErrNotFound)
	}

	ranges, err := s.repo.PriceRange.FindBySportID(ctx, sport.ID)
	if err != nil {
		return 0, fmt.Errorf("get price ranges: %w", err)
	}

	return resolvePricePerHour(ranges, weekday, turf.BasePricePerHour), nil
}

func (s *pricingService) CalculateQuote(ctx context.Context, req *request.QuoteRequest) (*response.QuoteResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Quote validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	sportID, err := uuid.Parse(req.SportID)
	if err != nil {
		return nil, fmt.Errorf("invalid sport ID format %s: %w", req.SportID, err)
	}

	sport, err := s.repo.Sport.FindByID(ctx, sportID)
	if err != nil {
		return nil, fmt.Errorf("get sport: %w", err)
	}
	if sport == nil {
		return nil, fmt.Errorf("sport %s: %w", req.SportID, ErrNotFound)
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %s: %w", req.Date, err)
	}

	startMinute, err := utils.ParseClock(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid start time %s: %w", req.StartTime, err)
	}
	endMinute, err := utils.ParseClock(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid end time %s: %w", req.EndTime, err)
	}

	weekday := int(date.Weekday())
	pricePerHour, err := s.priceForSportOn(ctx, sport, weekday)
	if err != nil {
		return nil, err
	}

	total, err := quoteAmount(pricePerHour, startMinute, endMinute)
	if err != nil {
		return nil, err
	}

	s.log.Debug("Quote calculated",
		zap.String("sport_id", req.SportID),
		zap.String("date", req.Date),
		zap.Int("weekday", weekday),
		zap.Float64("price_per_hour", pricePerHour),
		zap.Float64("total", total),
	)

	return &response.QuoteResponse{
		SportID:      req.SportID,
		Date:         req.Date,
		Weekday:      weekday,
		StartTime:    utils.FormatClock(startMinute),
		EndTime:      utils.FormatClock(endMinute),
		PricePerHour: pricePerHour,
		TotalAmount:  total,
	}, nil
}

func (s *pricingService) ResolvePrice(ctx context.Context, sportID, date string) (*response.ResolvedPriceResponse, error) {
	id, err := uuid.Parse(sportID)
	if err != nil {
		return nil, fmt.Errorf("invalid sport ID format %s: %w", sportID, err)
	}

	sport, err := s.repo.Sport.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get sport: %w", err)
	}
	if sport == nil {
		return nil, fmt.Errorf("sport %s: %w", sportID, ErrNotFound)
	}

	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %s: %w", date, err)
	}

	weekday := int(day.Weekday())
	pricePerHour, err := s.priceForSportOn(ctx, sport, weekday)
	if err != nil {
		return nil, err
	}

	return &response.ResolvedPriceResponse{
		SportID:      sportID,
		Date:         date,
		Weekday:      weekday,
		PricePerHour: pricePerHour,
	}, nil
}

func (s *pricingService) GetPriceRanges(ctx context.Context, sportID string) ([]*response.PriceRangeResponse, error) {
	id, err := uuid.Parse(sportID)
	if err != nil {
		return nil, fmt.Errorf("invalid sport ID format %s: %w", sportID, err)
	}

	sport, err := s.repo.Sport.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get sport: %w", err)
	}
	if sport == nil {
		return nil, fmt.Errorf("sport %s: %w", sportID, ErrNotFound)
	}

	ranges, err := s.repo.PriceRange.FindBySportID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get price ranges: %w", err)
	}

	resp := make([]*response.PriceRangeResponse, len(ranges))
	for i, pr := range ranges {
		r := response.PriceRangeToResponse(pr)
		resp[i] = &r
	}
	return resp, nil
}

func (s *pricingService) ReplacePriceRanges(ctx context.Context, sportID string, req *request.ReplacePriceRangesRequest) ([]*response.PriceRangeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Replace price ranges validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(sportID)
	if err != nil {
		return nil, fmt.Errorf("invalid sport ID format %s: %w", sportID, err)
	}

	sport, err := s.repo.Sport.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get sport: %w", err)
	}
	if sport == nil {
		return nil, fmt.Errorf("sport %s: %w", sportID, ErrNotFound)
	}

	now := time.Now()
	ranges := make([]*entity.PriceRange, len(req.PriceRanges))
	for i, pr := range req.PriceRanges {
		ranges[i] = &entity.PriceRange{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			SportID:      id,
			StartDay:     pr.StartDay,
			EndDay:       pr.EndDay,
			PricePerHour: pr.PricePerHour,
			Position:     i,
		}
	}

	if conflict, err := checkPriceRanges(ranges); err != nil {
		if conflict != nil {
			return nil, fmt.Errorf("%s: %w", conflict.Error(), err)
		}
		return nil, err
	}

	if err := s.repo.PriceRange.ReplaceForSport(ctx, id, ranges); err != nil {
		s.log.Error("Failed to replace price ranges",
			zap.Error(err),
			zap.String("sport_id", sportID),
		)
		return nil, fmt.Errorf("replace price ranges: %w", err)
	}

	s.log.Info("Price ranges replaced",
		zap.String("sport_id", sportID),
		zap.Int("range_count", len(ranges)),
	)

	resp := make([]*response.PriceRangeResponse, len(ranges))
	for i, pr := range ranges {
		r := response.PriceRangeToResponse(pr)
		resp[i] = &r
	}
	return resp, nil
}
