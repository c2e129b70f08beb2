package repository

import (
	"context"
	"fmt"

	"turf-booking/internal/data/entity"
	"turf-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	FindByTurfID(ctx context.Context, turfID uuid.UUID, limit, offset int) ([]*entity.Review, error)
	FindByUserAndTurf(ctx context.Context, userID, turfID uuid.UUID) (*entity.Review, error)
	CountByTurfID(ctx context.Context, turfID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Business queries
	GetTurfRatingStats(ctx context.Context, turfID uuid.UUID) (float64, int64, error) // rating, count
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, turf_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.UserID,
		review.TurfID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", review.UserID.String()),
			zap.String("turf_id", review.TurfID.String()),
		)
		return fmt.Errorf("create review for turf %s by user %s: %w",
			review.TurfID.String(), review.UserID.String(), err)
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	query := `
		SELECT id, user_id, turf_id, rating, comment, created_at
		FROM reviews
		WHERE id = $1
	`

	var review entity.Review
	err := r.db.QueryRow(ctx, query, id).Scan(
		&review.ID,
		&review.UserID,
		&review.TurfID,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return nil, fmt.Errorf("find review by ID %s: %w", id.String(), err)
	}

	return &review, nil
}

func (r *reviewRepository) FindByTurfID(ctx context.Context, turfID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT id, user_id, turf_id, rating, comment, created_at
		FROM reviews
		WHERE turf_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, turfID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find reviews by turf ID",
			zap.Error(err),
			zap.String("turf_id", turfID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find reviews by turf ID %s: %w", turfID.String(), err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.TurfID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, nil
}

func (r *reviewRepository) FindByUserAndTurf(ctx context.Context, userID, turfID uuid.UUID) (*entity.Review, error) {
	query := `
		SELECT id, user_id, turf_id, rating, comment, created_at
		FROM reviews
		WHERE user_id = $1 AND turf_id = $2
		LIMIT 1
	`

	var review entity.Review
	err := r.db.QueryRow(ctx, query, userID, turfID).Scan(
		&review.ID,
		&review.UserID,
		&review.TurfID,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by user and turf",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("turf_id", turfID.String()),
		)
		return nil, fmt.Errorf("find review by user %s and turf %s: %w",
			userID.String(), turfID.String(), err)
	}

	return &review, nil
}

func (r *reviewRepository) CountByTurfID(ctx context.Context, turfID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM reviews WHERE turf_id = $1`

	var total int64
	if err := r.db.QueryRow(ctx, query, turfID).Scan(&total); err != nil {
		r.log.Error("Failed to count reviews",
			zap.Error(err),
			zap.String("turf_id", turfID.String()),
		)
		return 0, fmt.Errorf("count reviews for turf %s: %w", turfID.String(), err)
	}

	return total, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reviews WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return fmt.Errorf("delete review %s: %w", id.String(), err)
	}

	return nil
}

func (r *reviewRepository) GetTurfRatingStats(ctx context.Context, turfID uuid.UUID) (float64, int64, error) {
	query := `
		SELECT COALESCE(AVG(rating), 0), COUNT(*)
		FROM reviews
		WHERE turf_id = $1
	`

	var avg float64
	var count int64
	if err := r.db.QueryRow(ctx, query, turfID).Scan(&avg, &count); err != nil {
		r.log.Error("Failed to get turf rating stats",
			zap.Error(err),
			zap.String("turf_id", turfID.String()),
		)
		return 0, 0, fmt.Errorf("get rating stats for turf %s: %w", turfID.String(), err)
	}

	return avg, count, nil
}
