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

type ReviewService interface {
	CreateReview(ctx context.Context, turfID string, req *request.ReviewRequest) (*response.ReviewResponse, error)
	GetTurfReviews(ctx context.Context, turfID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	GetTurfRating(ctx context.Context, turfID string) (*response.TurfRatingResponse, error)
	DeleteReview(ctx context.Context, reviewID string) error
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, turfID string, req *request.ReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	turfUUID, err := uuid.Parse(turfID)
	if err != nil {
		return nil, fmt.Errorf("invalid turf ID format %s: %w", turfID, err)
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", req.UserID, err)
	}

	turf, err := s.repo.Turf.FindByID(ctx, turfUUID)
	if err != nil {
		return nil, fmt.Errorf("get turf: %w", err)
	}
	if turf == nil {
		return nil, fmt.Errorf("turf %s: %w", turfID, ErrNotFound)
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil || user == nil {
		return nil, fmt.Errorf("user %s: %w", req.UserID, ErrNotFound)
	}

	existing, err := s.repo.Review.FindByUserAndTurf(ctx, userID, turfUUID)
	if err != nil {
		return nil, fmt.Errorf("check existing review: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("user has already reviewed this turf")
	}

	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:  userID,
		TurfID:  turfUUID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review", zap.Error(err), zap.String("turf_id", turfID))
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("turf_id", turfID),
		zap.Int("rating", req.Rating),
	)

	resp := response.ReviewToResponse(review)
	resp.UserName = user.Name
	return &resp, nil
}

func (s *reviewService) GetTurfReviews(ctx context.Context, turfID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	turfUUID, err := uuid.Parse(turfID)
	if err != nil {
		return nil, fmt.Errorf("invalid turf ID format %s: %w", turfID, err)
	}

	reviews, err := s.repo.Review.FindByTurfID(ctx, turfUUID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get turf reviews", zap.Error(err), zap.String("turf_id", turfID))
		return nil, fmt.Errorf("get turf reviews: %w", err)
	}

	total, err := s.repo.Review.CountByTurfID(ctx, turfUUID)
	if err != nil {
		return nil, fmt.Errorf("count turf reviews: %w", err)
	}

	items := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		items[i] = response.ReviewToResponse(review)
		if user, err := s.repo.User.FindByID(ctx, review.UserID); err != nil {
			s.log.Warn("Failed to enrich review with user name", zap.Error(err), zap.String("user_id", review.UserID.String()))
		} else if user != nil {
			items[i].UserName = user.Name
		}
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *reviewService) GetTurfRating(ctx context.Context, turfID string) (*response.TurfRatingResponse, error) {
	turfUUID, err := uuid.Parse(turfID)
	if err != nil {
		return nil, fmt.Errorf("invalid turf ID format %s: %w", turfID, err)
	}

	avg, count, err := s.repo.Review.GetTurfRatingStats(ctx, turfUUID)
	if err != nil {
		return nil, fmt.Errorf("get rating stats: %w", err)
	}

	return &response.TurfRatingResponse{
		TurfID:        turfID,
		AverageRating: avg,
		ReviewCount:   int(count),
	}, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID string) error {
	id, err := uuid.Parse(reviewID)
	if err != nil {
		return fmt.Errorf("invalid review ID format %s: %w", reviewID, err)
	}

	review, err := s.repo.Review.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get review: %w", err)
	}
	if review == nil {
		return fmt.Errorf("review %s: %w", reviewID, ErrNotFound)
	}

	if err := s.repo.Review.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	s.log.Info("Review deleted", zap.String("review_id", reviewID))
	return nil
}
