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

type SportService interface {
	CreateSport(ctx context.Context, turfID string, req *request.SportRequest) (*response.SportResponse, error)
	GetSportByID(ctx context.Context, sportID string) (*response.SportResponse, error)
	GetTurfSports(ctx context.Context, turfID string) ([]*response.SportResponse, error)
	UpdateSport(ctx context.Context, sportID string, req *request.SportUpdateRequest) (*response.SportResponse, error)
	DeleteSport(ctx context.Context, sportID string) error
}

type sportService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSportService(repo *repository.Repository, log *zap.Logger) SportService {
	return &sportService{
		repo: repo,
		log:  log.With(zap.String("service", "sport")),
	}
}

func (s *sportService) CreateSport(ctx context.Context, turfID string, req *request.SportRequest) (*response.SportResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create sport validation failed", zap.Any("errors", errs))
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

	now := time.Now()
	sport := &entity.Sport{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		TurfID:      turfUUID,
		Name:        req.Name,
		Description: req.Description,
	}

	var ranges []*entity.PriceRange
	if len(req.PriceRanges) > 0 {
		ranges = make([]*entity.PriceRange, len(req.PriceRanges))
		for i, pr := range req.PriceRanges {
			ranges[i] = &entity.PriceRange{
				BaseSimple: entity.BaseSimple{
					ID:        uuid.New(),
					CreatedAt: now,
				},
				SportID:      sport.ID,
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
	}

	if err := s.repo.Sport.Create(ctx, sport); err != nil {
		s.log.Error("Failed to create sport", zap.Error(err), zap.String("turf_id", turfID))
		return nil, fmt.Errorf("create sport: %w", err)
	}

	if len(ranges) > 0 {
		if err := s.repo.PriceRange.ReplaceForSport(ctx, sport.ID, ranges); err != nil {
			// Roll back the sport so a half-created record never lingers.
			if delErr := s.repo.Sport.Delete(ctx, sport.ID); delErr != nil {
				s.log.Error("Failed to roll back sport after range persist failure",
					zap.Error(delErr),
					zap.String("sport_id", sport.ID.String()),
				)
			}
			return nil, fmt.Errorf("create price ranges: %w", err)
		}
	}

	s.log.Info("Sport created",
		zap.String("sport_id", sport.ID.String()),
		zap.String("turf_id", turfID),
		zap.String("name", req.Name),
		zap.Int("range_count", len(ranges)),
	)

	resp := response.SportToResponse(sport, ranges)
	return &resp, nil
}

func (s *sportService) GetSportByID(ctx context.Context, sportID string) (*response.SportResponse, error) {
	sport, err := s.findSport(ctx, sportID)
	if err != nil {
		return nil, err
	}

	ranges, err := s.repo.PriceRange.FindBySportID(ctx, sport.ID)
	if err != nil {
		return nil, fmt.Errorf("get price ranges: %w", err)
	}

	resp := response.SportToResponse(sport, ranges)
	return &resp, nil
}

func (s *sportService) GetTurfSports(ctx context.Context, turfID string) ([]*response.SportResponse, error) {
	turfUUID, err := uuid.Parse(turfID)
	if err != nil {
		return nil, fmt.Errorf("invalid turf ID format %s: %w", turfID, err)
	}

	sports, err := s.repo.Sport.FindByTurfID(ctx, turfUUID)
	if err != nil {
		return nil, fmt.Errorf("get turf sports: %w", err)
	}

	resp := make([]*response.SportResponse, len(sports))
	for i, sport := range sports {
		ranges, err := s.repo.PriceRange.FindBySportID(ctx, sport.ID)
		if err != nil {
			return nil, fmt.Errorf("get price ranges: %w", err)
		}
		r := response.SportToResponse(sport, ranges)
		resp[i] = &r
	}
	return resp, nil
}

func (s *sportService) UpdateSport(ctx context.Context, sportID string, req *request.SportUpdateRequest) (*response.SportResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	sport, err := s.findSport(ctx, sportID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		sport.Name = *req.Name
	}
	if req.Description != nil {
		sport.Description = *req.Description
	}
	sport.UpdatedAt = time.Now()

	if err := s.repo.Sport.Update(ctx, sport); err != nil {
		return nil, fmt.Errorf("update sport: %w", err)
	}

	s.log.Info("Sport updated", zap.String("sport_id", sportID))

	ranges, err := s.repo.PriceRange.FindBySportID(ctx, sport.ID)
	if err != nil {
		return nil, fmt.Errorf("get price ranges: %w", err)
	}

	resp := response.SportToResponse(sport, ranges)
	return &resp, nil
}

func (s *sportService) DeleteSport(ctx context.Context, sportID string) error {
	sport, err := s.findSport(ctx, sportID)
	if err != nil {
		return err
	}

	if err := s.repo.PriceRange.DeleteBySportID(ctx, sport.ID); err != nil {
		return fmt.Errorf("delete price ranges: %w", err)
	}
	if err := s.repo.Sport.Delete(ctx, sport.ID); err != nil {
		return fmt.Errorf("delete sport: %w", err)
	}

	s.log.Info("Sport deleted", zap.String("sport_id", sportID))
	return nil
}

func (s *sportService) findSport(ctx context.Context, sportID string) (*entity.Sport, error) {
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
	return sport, nil
}
