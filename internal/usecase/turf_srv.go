package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"turf-booking/internal/data/entity"
	"turf-booking/internal/data/repository"
	"turf-booking/internal/dto/request"
	"turf-booking/internal/dto/response"
	"turf-booking/pkg/uploader"
	"turf-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TurfService interface {
	// Public catalog
	ListTurfs(ctx context.Context, city string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TurfResponse], error)
	GetTurfByID(ctx context.Context, turfID string) (*response.TurfDetailResponse, error)

	// Owner console
	CreateTurf(ctx context.Context, req *request.TurfRequest) (*response.TurfResponse, error)
	GetOwnerTurfs(ctx context.Context, ownerID string) ([]*response.TurfResponse, error)
	UpdateTurf(ctx context.Context, turfID string, req *request.TurfUpdateRequest) (*response.TurfResponse, error)
	DeleteTurf(ctx context.Context, turfID string) error
	UploadPhoto(ctx context.Context, turfID string, file io.Reader) (*response.TurfResponse, error)
	DeletePhoto(ctx context.Context, turfID string, req *request.DeleteTurfPhotoRequest) (*response.TurfResponse, error)
}

type turfService struct {
	repo   *repository.Repository
	upload uploader.Uploader
	log    *zap.Logger
}

func NewTurfService(repo *repository.Repository, upload uploader.Uploader, log *zap.Logger) TurfService {
	return &turfService{
		repo:   repo,
		upload: upload,
		log:    log.With(zap.String("service", "turf")),
	}
}

func (s *turfService) ListTurfs(ctx context.Context, city string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TurfResponse], error) {
	var cityFilter *string
	if city != "" {
		pattern := "%" + city + "%"
		cityFilter = &pattern
	}

	turfs, err := s.repo.Turf.FindAll(ctx, req.Limit(), req.Offset(), cityFilter)
	if err != nil {
		s.log.Error("Failed to list turfs", zap.Error(err), zap.String("city", city))
		return nil, fmt.Errorf("list turfs: %w", err)
	}

	total, err := s.repo.Turf.CountAll(ctx, cityFilter)
	if err != nil {
		return nil, fmt.Errorf("count turfs: %w", err)
	}

	items := make([]response.TurfResponse, len(turfs))
	for i, t := range turfs {
		items[i] = response.TurfToResponse(t)
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *turfService) GetTurfByID(ctx context.Context, turfID string) (*response.TurfDetailResponse, error) {
	turf, err := s.findTurf(ctx, turfID)
	if err != nil {
		return nil, err
	}

	avgRating, reviewCount, err := s.repo.Review.GetTurfRatingStats(ctx, turf.ID)
	if err != nil {
		s.log.Warn("Failed to load rating stats", zap.Error(err), zap.String("turf_id", turfID))
	}

	sports, err := s.repo.Sport.FindByTurfID(ctx, turf.ID)
	if err != nil {
		return nil, fmt.Errorf("get turf sports: %w", err)
	}

	sportResponses := make([]response.SportResponse, len(sports))
	for i, sport := range sports {
		ranges, err := s.repo.PriceRange.FindBySportID(ctx, sport.ID)
		if err != nil {
			return nil, fmt.Errorf("get price ranges: %w", err)
		}
		sportResponses[i] = response.SportToResponse(sport, ranges)
	}

	resp := response.TurfToDetailResponse(turf, avgRating, int(reviewCount), sportResponses)
	return &resp, nil
}

func (s *turfService) CreateTurf(ctx context.Context, req *request.TurfRequest) (*response.TurfResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create turf validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("invalid owner ID format %s: %w", req.OwnerID, err)
	}

	owner, err := s.repo.User.FindByID(ctx, ownerID)
	if err != nil || owner == nil {
		return nil, fmt.Errorf("owner %s: %w", req.OwnerID, ErrNotFound)
	}

	now := time.Now()
	turf := &entity.Turf{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OwnerID:          ownerID,
		Name:             req.Name,
		Address:          req.Address,
		City:             req.City,
		Description:      req.Description,
		BasePricePerHour: req.BasePricePerHour,
		ImageURLs:        []string{},
	}

	if err := s.repo.Turf.Create(ctx, turf); err != nil {
		s.log.Error("Failed to create turf", zap.Error(err), zap.String("owner_id", req.OwnerID))
		return nil, fmt.Errorf("create turf: %w", err)
	}

	s.log.Info("Turf created",
		zap.String("turf_id", turf.ID.String()),
		zap.String("owner_id", req.OwnerID),
		zap.String("name", req.Name),
	)

	resp := response.TurfToResponse(turf)
	return &resp, nil
}

func (s *turfService) GetOwnerTurfs(ctx context.Context, ownerID string) ([]*response.TurfResponse, error) {
	id, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, fmt.Errorf("invalid owner ID format %s: %w", ownerID, err)
	}

	turfs, err := s.repo.Turf.FindByOwnerID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get owner turfs: %w", err)
	}

	resp := make([]*response.TurfResponse, len(turfs))
	for i, t := range turfs {
		r := response.TurfToResponse(t)
		resp[i] = &r
	}
	return resp, nil
}

func (s *turfService) UpdateTurf(ctx context.Context, turfID string, req *request.TurfUpdateRequest) (*response.TurfResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	turf, err := s.findTurf(ctx, turfID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		turf.Name = *req.Name
	}
	if req.Address != nil {
		turf.Address = *req.Address
	}
	if req.City != nil {
		turf.City = *req.City
	}
	if req.Description != nil {
		turf.Description = *req.Description
	}
	if req.BasePricePerHour != nil {
		if *req.BasePricePerHour <= 0 {
			return nil, ErrInvalidPrice
		}
		turf.BasePricePerHour = *req.BasePricePerHour
	}
	turf.UpdatedAt = time.Now()

	if err := s.repo.Turf.Update(ctx, turf); err != nil {
		s.log.Error("Failed to update turf", zap.Error(err), zap.String("turf_id", turfID))
		return nil, fmt.Errorf("update turf: %w", err)
	}

	s.log.Info("Turf updated", zap.String("turf_id", turfID))

	resp := response.TurfToResponse(turf)
	return &resp, nil
}

func (s *turfService) DeleteTurf(ctx context.Context, turfID string) error {
	turf, err := s.findTurf(ctx, turfID)
	if err != nil {
		return err
	}

	if err := s.repo.Turf.Delete(ctx, turf.ID); err != nil {
		return fmt.Errorf("delete turf: %w", err)
	}

	s.log.Info("Turf deleted", zap.String("turf_id", turfID))
	return nil
}

func (s *turfService) UploadPhoto(ctx context.Context, turfID string, file io.Reader) (*response.TurfResponse, error) {
	turf, err := s.findTurf(ctx, turfID)
	if err != nil {
		return nil, err
	}

	url, err := s.upload.UploadTurfPhoto(ctx, file, turfID)
	if err != nil {
		s.log.Error("Failed to upload turf photo", zap.Error(err), zap.String("turf_id", turfID))
		return nil, fmt.Errorf("upload photo: %w", err)
	}

	turf.ImageURLs = append(turf.ImageURLs, url)
	if err := s.repo.Turf.UpdateImageURLs(ctx, turf.ID, turf.ImageURLs); err != nil {
		return nil, fmt.Errorf("save photo url: %w", err)
	}

	s.log.Info("Turf photo uploaded",
		zap.String("turf_id", turfID),
		zap.String("url", url),
	)

	resp := response.TurfToResponse(turf)
	return &resp, nil
}

func (s *turfService) DeletePhoto(ctx context.Context, turfID string, req *request.DeleteTurfPhotoRequest) (*response.TurfResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	turf, err := s.findTurf(ctx, turfID)
	if err != nil {
		return nil, err
	}

	kept := make([]string, 0, len(turf.ImageURLs))
	found := false
	for _, url := range turf.ImageURLs {
		if url == req.PhotoURL {
			found = true
			continue
		}
		kept = append(kept, url)
	}
	if !found {
		return nil, fmt.Errorf("photo %s: %w", req.PhotoURL, ErrNotFound)
	}

	if err := s.upload.DeletePhoto(ctx, req.PhotoURL); err != nil {
		s.log.Warn("Failed to delete photo from storage", zap.Error(err), zap.String("url", req.PhotoURL))
	}

	turf.ImageURLs = kept
	if err := s.repo.Turf.UpdateImageURLs(ctx, turf.ID, kept); err != nil {
		return nil, fmt.Errorf("save photo urls: %w", err)
	}

	s.log.Info("Turf photo deleted", zap.String("turf_id", turfID), zap.String("url", req.PhotoURL))

	resp := response.TurfToResponse(turf)
	return &resp, nil
}

func (s *turfService) findTurf(ctx context.Context, turfID string) (*entity.Turf, error) {
	id, err := uuid.Parse(turfID)
	if err != nil {
		return nil, fmt.Errorf("invalid turf ID format %s: %w", turfID, err)
	}

	turf, err := s.repo.Turf.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get turf: %w", err)
	}
	if turf == nil {
		return nil, fmt.Errorf("turf %s: %w", turfID, ErrNotFound)
	}
	return turf, nil
}
