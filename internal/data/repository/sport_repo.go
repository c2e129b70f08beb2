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

type SportRepository interface {
	Create(ctx context.Context, sport *entity.Sport) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Sport, error)
	FindByTurfID(ctx context.Context, turfID uuid.UUID) ([]*entity.Sport, error)
	Update(ctx context.Context, sport *entity.Sport) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type sportRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSportRepository(db database.PgxIface, log *zap.Logger) SportRepository {
	return &sportRepository{
		db:  db,
		log: log.With(zap.String("repository", "sport")),
	}
}

func (r *sportRepository) Create(ctx context.Context, sport *entity.Sport) error {
	query := `
		INSERT INTO sports (id, turf_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		sport.ID,
		sport.TurfID,
		sport.Name,
		sport.Description,
		sport.CreatedAt,
		sport.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create sport",
			zap.Error(err),
			zap.String("name", sport.Name),
			zap.String("turf_id", sport.TurfID.String()),
		)
		return fmt.Errorf("create sport %s: %w", sport.Name, err)
	}

	return nil
}

func (r *sportRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Sport, error) {
	query := `
		SELECT id, turf_id, name, description, created_at, updated_at
		FROM sports
		WHERE id = $1
	`

	var sport entity.Sport
	err := r.db.QueryRow(ctx, query, id).Scan(
		&sport.ID,
		&sport.TurfID,
		&sport.Name,
		&sport.Description,
		&sport.CreatedAt,
		&sport.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find sport by ID",
			zap.Error(err),
			zap.String("sport_id", id.String()),
		)
		return nil, fmt.Errorf("find sport by ID %s: %w", id.String(), err)
	}

	return &sport, nil
}

func (r *sportRepository) FindByTurfID(ctx context.Context, turfID uuid.UUID) ([]*entity.Sport, error) {
	query := `
		SELECT id, turf_id, name, description, created_at, updated_at
		FROM sports
		WHERE turf_id = $1
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, turfID)
	if err != nil {
		r.log.Error("Failed to find sports by turf ID",
			zap.Error(err),
			zap.String("turf_id", turfID.String()),
		)
		return nil, fmt.Errorf("find sports by turf ID %s: %w", turfID.String(), err)
	}
	defer rows.Close()

	var sports []*entity.Sport
	for rows.Next() {
		var sport entity.Sport
		err := rows.Scan(
			&sport.ID,
			&sport.TurfID,
			&sport.Name,
			&sport.Description,
			&sport.CreatedAt,
			&sport.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan sport row", zap.Error(err))
			return nil, fmt.Errorf("scan sport row: %w", err)
		}
		sports = append(sports, &sport)
	}

	return sports, nil
}

func (r *sportRepository) Update(ctx context.Context, sport *entity.Sport) error {
	query := `
		UPDATE sports
		SET name = $2, description = $3, updated_at = $4
		WHERE id = $1
	`

	_, err := r.db.Exec(ctx, query,
		sport.ID,
		sport.Name,
		sport.Description,
		sport.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update sport",
			zap.Error(err),
			zap.String("sport_id", sport.ID.String()),
		)
		return fmt.Errorf("update sport %s: %w", sport.ID.String(), err)
	}

	return nil
}

// Delete removes the sport; its price ranges cascade with it.
func (r *sportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM sports WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete sport",
			zap.Error(err),
			zap.String("sport_id", id.String()),
		)
		return fmt.Errorf("delete sport %s: %w", id.String(), err)
	}

	return nil
}
