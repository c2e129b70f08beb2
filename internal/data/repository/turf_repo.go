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

type TurfRepository interface {
	Create(ctx context.Context, turf *entity.Turf) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Turf, error)
	FindAll(ctx context.Context, limit, offset int, cityFilter *string) ([]*entity.Turf, error)
	CountAll(ctx context.Context, cityFilter *string) (int64, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Turf, error)
	Update(ctx context.Context, turf *entity.Turf) error
	UpdateImageURLs(ctx context.Context, id uuid.UUID, imageURLs []string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type turfRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTurfRepository(db database.PgxIface, log *zap.Logger) TurfRepository {
	return &turfRepository{
		db:  db,
		log: log.With(zap.String("repository", "turf")),
	}
}

func (r *turfRepository) Create(ctx context.Context, turf *entity.Turf) error {
	query := `
		INSERT INTO turfs (id, owner_id, name, address, city, description, base_price_per_hour, image_urls, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		turf.ID,
		turf.OwnerID,
		turf.Name,
		turf.Address,
		turf.City,
		turf.Description,
		turf.BasePricePerHour,
		turf.ImageURLs,
		turf.CreatedAt,
		turf.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create turf",
			zap.Error(err),
			zap.String("name", turf.Name),
			zap.String("owner_id", turf.OwnerID.String()),
		)
		return fmt.Errorf("create turf %s: %w", turf.Name, err)
	}

	return nil
}

func (r *turfRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Turf, error) {
	query := `
		SELECT id, owner_id, name, address, city, description, base_price_per_hour, image_urls, created_at, updated_at
		FROM turfs
		WHERE id = $1
	`

	var turf entity.Turf
	err := r.db.QueryRow(ctx, query, id).Scan(
		&turf.ID,
		&turf.OwnerID,
		&turf.Name,
		&turf.Address,
		&turf.City,
		&turf.Description,
		&turf.BasePricePerHour,
		&turf.ImageURLs,
		&turf.CreatedAt,
		&turf.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find turf by ID",
			zap.Error(err),
			zap.String("turf_id", id.String()),
		)
		return nil, fmt.Errorf("find turf by ID %s: %w", id.String(), err)
	}

	return &turf, nil
}

func (r *turfRepository) FindAll(ctx context.Context, limit, offset int, cityFilter *string) ([]*entity.Turf, error) {
	query := `
		SELECT id, owner_id, name, address, city, description, base_price_per_hour, image_urls, created_at, updated_at
		FROM turfs
		WHERE ($3::text IS NULL OR city ILIKE $3)
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset, cityFilter)
	if err != nil {
		r.log.Error("Failed to find turfs",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
			zap.Stringp("city", cityFilter),
		)
		return nil, fmt.Errorf("find turfs: %w", err)
	}
	defer rows.Close()

	var turfs []*entity.Turf
	for rows.Next() {
		var turf entity.Turf
		err := rows.Scan(
			&turf.ID,
			&turf.OwnerID,
			&turf.Name,
			&turf.Address,
			&turf.City,
			&turf.Description,
			&turf.BasePricePerHour,
			&turf.ImageURLs,
			&turf.CreatedAt,
			&turf.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan turf row", zap.Error(err))
			return nil, fmt.Errorf("scan turf row: %w", err)
		}
		turfs = append(turfs, &turf)
	}

	return turfs, nil
}

func (r *turfRepository) CountAll(ctx context.Context, cityFilter *string) (int64, error) {
	query := `SELECT COUNT(*) FROM turfs WHERE ($1::text IS NULL OR city ILIKE $1)`

	var total int64
	if err := r.db.QueryRow(ctx, query, cityFilter).Scan(&total); err != nil {
		r.log.Error("Failed to count turfs", zap.Error(err))
		return 0, fmt.Errorf("count turfs: %w", err)
	}

	return total, nil
}

func (r *turfRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Turf, error) {
	query := `
		SELECT id, owner_id, name, address, city, description, base_price_per_hour, image_urls, created_at, updated_at
		FROM turfs
		WHERE owner_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		r.log.Error("Failed to find turfs by owner ID",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find turfs by owner ID %s: %w", ownerID.String(), err)
	}
	defer rows.Close()

	var turfs []*entity.Turf
	for rows.Next() {
		var turf entity.Turf
		err := rows.Scan(
			&turf.ID,
			&turf.OwnerID,
			&turf.Name,
			&turf.Address,
			&turf.City,
			&turf.Description,
			&turf.BasePricePerHour,
			&turf.ImageURLs,
			&turf.CreatedAt,
			&turf.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan turf row", zap.Error(err))
			return nil, fmt.Errorf("scan turf row: %w", err)
		}
		turfs = append(turfs, &turf)
	}

	return turfs, nil
}

func (r *turfRepository) Update(ctx context.Context, turf *entity.Turf) error {
	query := `
		UPDATE turfs
		SET name = $2, address = $3, city = $4, description = $5, base_price_per_hour = $6, updated_at = $7
		WHERE id = $1
	`

	_, err := r.db.Exec(ctx, query,
		turf.ID,
		turf.Name,
		turf.Address,
		turf.City,
		turf.Description,
		turf.BasePricePerHour,
		turf.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update turf",
			zap.Error(err),
			zap.String("turf_id", turf.ID.String()),
		)
		return fmt.Errorf("update turf %s: %w", turf.ID.String(), err)
	}

	return nil
}

func (r *turfRepository) UpdateImageURLs(ctx context.Context, id uuid.UUID, imageURLs []string) error {
	query := `UPDATE turfs SET image_urls = $2, updated_at = NOW() WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, imageURLs)
	if err != nil {
		r.log.Error("Failed to update turf images",
			zap.Error(err),
			zap.String("turf_id", id.String()),
		)
		return fmt.Errorf("update turf images %s: %w", id.String(), err)
	}

	return nil
}

// Delete removes the turf. Sports, price ranges and time slots hang off
// ON DELETE CASCADE foreign keys; bookings reference the turf weakly and
// stay behind as history.
func (r *turfRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM turfs WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete turf",
			zap.Error(err),
			zap.String("turf_id", id.String()),
		)
		return fmt.Errorf("delete turf %s: %w", id.String(), err)
	}

	return nil
}
