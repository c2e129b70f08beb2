package repository

import (
	"context"
	"fmt"

	"turf-booking/internal/data/entity"
	"turf-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PriceRangeRepository interface {
	FindBySportID(ctx context.Context, sportID uuid.UUID) ([]*entity.PriceRange, error)
	ReplaceForSport(ctx context.Context, sportID uuid.UUID, ranges []*entity.PriceRange) error
	DeleteBySportID(ctx context.Context, sportID uuid.UUID) error
}

type priceRangeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPriceRangeRepository(db database.PgxIface, log *zap.Logger) PriceRangeRepository {
	return &priceRangeRepository{
		db:  db,
		log: log.With(zap.String("repository", "price_range")),
	}
}

// FindBySportID returns the ranges in their editor-defined order. Position
// order is what makes first-match price resolution deterministic.
func (r *priceRangeRepository) FindBySportID(ctx context.Context, sportID uuid.UUID) ([]*entity.PriceRange, error) {
	query := `
		SELECT id, sport_id, start_day, end_day, price_per_hour, position, created_at
		FROM price_ranges
		WHERE sport_id = $1
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, query, sportID)
	if err != nil {
		r.log.Error("Failed to find price ranges by sport ID",
			zap.Error(err),
			zap.String("sport_id", sportID.String()),
		)
		return nil, fmt.Errorf("find price ranges by sport ID %s: %w", sportID.String(), err)
	}
	defer rows.Close()

	var ranges []*entity.PriceRange
	for rows.Next() {
		var pr entity.PriceRange
		err := rows.Scan(
			&pr.ID,
			&pr.SportID,
			&pr.StartDay,
			&pr.EndDay,
			&pr.PricePerHour,
			&pr.Position,
			&pr.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan price range row", zap.Error(err))
			return nil, fmt.Errorf("scan price range row: %w", err)
		}
		ranges = append(ranges, &pr)
	}

	return ranges, nil
}

// ReplaceForSport swaps the sport's whole range set in one transaction so a
// price lookup never observes a half-replaced rule set.
func (r *priceRangeRepository) ReplaceForSport(ctx context.Context, sportID uuid.UUID, ranges []*entity.PriceRange) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin replace price ranges: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM price_ranges WHERE sport_id = $1`, sportID); err != nil {
		r.log.Error("Failed to clear price ranges",
			zap.Error(err),
			zap.String("sport_id", sportID.String()),
		)
		return fmt.Errorf("clear price ranges for sport %s: %w", sportID.String(), err)
	}

	insert := `
		INSERT INTO price_ranges (id, sport_id, start_day, end_day, price_per_hour, position, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for _, pr := range ranges {
		_, err := tx.Exec(ctx, insert,
			pr.ID,
			pr.SportID,
			pr.StartDay,
			pr.EndDay,
			pr.PricePerHour,
			pr.Position,
			pr.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to insert price range",
				zap.Error(err),
				zap.String("sport_id", sportID.String()),
				zap.Int("position", pr.Position),
			)
			return fmt.Errorf("insert price range for sport %s: %w", sportID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit replace price ranges: %w", err)
	}

	return nil
}

func (r *priceRangeRepository) DeleteBySportID(ctx context.Context, sportID uuid.UUID) error {
	query := `DELETE FROM price_ranges WHERE sport_id = $1`

	_, err := r.db.Exec(ctx, query, sportID)
	if err != nil {
		r.log.Error("Failed to delete price ranges",
			zap.Error(err),
			zap.String("sport_id", sportID.String()),
		)
		return fmt.Errorf("delete price ranges for sport %s: %w", sportID.String(), err)
	}

	return nil
}
