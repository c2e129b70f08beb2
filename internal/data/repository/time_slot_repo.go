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

type TimeSlotRepository interface {
	Create(ctx context.Context, slot *entity.TimeSlot) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TimeSlot, error)
	FindByTurfID(ctx context.Context, turfID uuid.UUID) ([]*entity.TimeSlot, error)
	SetAvailability(ctx context.Context, id uuid.UUID, isAvailable bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type timeSlotRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTimeSlotRepository(db database.PgxIface, log *zap.Logger) TimeSlotRepository {
	return &timeSlotRepository{
		db:  db,
		log: log.With(zap.String("repository", "time_slot")),
	}
}

func (r *timeSlotRepository) Create(ctx context.Context, slot *entity.TimeSlot) error {
	query := `
		INSERT INTO time_slots (id, turf_id, start_minute, end_minute, is_available, days_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		slot.ID,
		slot.TurfID,
		slot.StartMinute,
		slot.EndMinute,
		slot.IsAvailable,
		slot.DaysAvailable,
		slot.CreatedAt,
		slot.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create time slot",
			zap.Error(err),
			zap.String("turf_id", slot.TurfID.String()),
			zap.Int("start_minute", slot.StartMinute),
		)
		return fmt.Errorf("create time slot for turf %s: %w", slot.TurfID.String(), err)
	}

	return nil
}

func (r *timeSlotRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TimeSlot, error) {
	query := `
		SELECT id, turf_id, start_minute, end_minute, is_available, days_available, created_at, updated_at
		FROM time_slots
		WHERE id = $1
	`

	var slot entity.TimeSlot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&slot.ID,
		&slot.TurfID,
		&slot.StartMinute,
		&slot.EndMinute,
		&slot.IsAvailable,
		&slot.DaysAvailable,
		&slot.CreatedAt,
		&slot.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find time slot by ID",
			zap.Error(err),
			zap.String("slot_id", id.String()),
		)
		return nil, fmt.Errorf("find time slot by ID %s: %w", id.String(), err)
	}

	return &slot, nil
}

func (r *timeSlotRepository) FindByTurfID(ctx context.Context, turfID uuid.UUID) ([]*entity.TimeSlot, error) {
	query := `
		SELECT id, turf_id, start_minute, end_minute, is_available, days_available, created_at, updated_at
		FROM time_slots
		WHERE turf_id = $1
		ORDER BY start_minute
	`

	rows, err := r.db.Query(ctx, query, turfID)
	if err != nil {
		r.log.Error("Failed to find time slots by turf ID",
			zap.Error(err),
			zap.String("turf_id", turfID.String()),
		)
		return nil, fmt.Errorf("find time slots by turf ID %s: %w", turfID.String(), err)
	}
	defer rows.Close()

	var slots []*entity.TimeSlot
	for rows.Next() {
		var slot entity.TimeSlot
		err := rows.Scan(
			&slot.ID,
			&slot.TurfID,
			&slot.StartMinute,
			&slot.EndMinute,
			&slot.IsAvailable,
			&slot.DaysAvailable,
			&slot.CreatedAt,
			&slot.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan time slot row", zap.Error(err))
			return nil, fmt.Errorf("scan time slot row: %w", err)
		}
		slots = append(slots, &slot)
	}

	return slots, nil
}

// SetAvailability flips the owner switch. Last writer wins; bookings that
// were admitted while the slot was on are never touched.
func (r *timeSlotRepository) SetAvailability(ctx context.Context, id uuid.UUID, isAvailable bool) error {
	query := `UPDATE time_slots SET is_available = $2, updated_at = NOW() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, isAvailable)
	if err != nil {
		r.log.Error("Failed to set time slot availability",
			zap.Error(err),
			zap.String("slot_id", id.String()),
			zap.Bool("is_available", isAvailable),
		)
		return fmt.Errorf("set availability of time slot %s: %w", id.String(), err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("time slot %s not found", id.String())
	}

	return nil
}

func (r *timeSlotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM time_slots WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete time slot",
			zap.Error(err),
			zap.String("slot_id", id.String()),
		)
		return fmt.Errorf("delete time slot %s: %w", id.String(), err)
	}

	return nil
}
