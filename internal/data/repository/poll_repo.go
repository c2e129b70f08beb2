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

type PollRepository interface {
	Create(ctx context.Context, poll *entity.Poll) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Poll, error)
	FindOpen(ctx context.Context, limit, offset int) ([]*entity.Poll, error)
	CountOpen(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PollStatus) error
}

type pollRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPollRepository(db database.PgxIface, log *zap.Logger) PollRepository {
	return &pollRepository{
		db:  db,
		log: log.With(zap.String("repository", "poll")),
	}
}

func (r *pollRepository) Create(ctx context.Context, poll *entity.Poll) error {
	query := `
		INSERT INTO polls (id, user_id, turf_id, sport_name, slot_date, players_needed, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		poll.ID,
		poll.UserID,
		poll.TurfID,
		poll.SportName,
		poll.SlotDate,
		poll.PlayersNeeded,
		poll.Status,
		poll.CreatedAt,
		poll.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create poll",
			zap.Error(err),
			zap.String("user_id", poll.UserID.String()),
			zap.String("turf_id", poll.TurfID.String()),
		)
		return fmt.Errorf("create poll by user %s: %w", poll.UserID.String(), err)
	}

	return nil
}

func (r *pollRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Poll, error) {
	query := `
		SELECT id, user_id, turf_id, sport_name, slot_date, players_needed, status, created_at, updated_at
		FROM polls
		WHERE id = $1
	`

	var poll entity.Poll
	err := r.db.QueryRow(ctx, query, id).Scan(
		&poll.ID,
		&poll.UserID,
		&poll.TurfID,
		&poll.SportName,
		&poll.SlotDate,
		&poll.PlayersNeeded,
		&poll.Status,
		&poll.CreatedAt,
		&poll.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find poll by ID",
			zap.Error(err),
			zap.String("poll_id", id.String()),
		)
		return nil, fmt.Errorf("find poll by ID %s: %w", id.String(), err)
	}

	return &poll, nil
}

func (r *pollRepository) FindOpen(ctx context.Context, limit, offset int) ([]*entity.Poll, error) {
	query := `
		SELECT id, user_id, turf_id, sport_name, slot_date, players_needed, status, created_at, updated_at
		FROM polls
		WHERE status = 'open'
		ORDER BY slot_date
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find open polls",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find open polls: %w", err)
	}
	defer rows.Close()

	var polls []*entity.Poll
	for rows.Next() {
		var poll entity.Poll
		err := rows.Scan(
			&poll.ID,
			&poll.UserID,
			&poll.TurfID,
			&poll.SportName,
			&poll.SlotDate,
			&poll.PlayersNeeded,
			&poll.Status,
			&poll.CreatedAt,
			&poll.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan poll row", zap.Error(err))
			return nil, fmt.Errorf("scan poll row: %w", err)
		}
		polls = append(polls, &poll)
	}

	return polls, nil
}

func (r *pollRepository) CountOpen(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM polls WHERE status = 'open'`

	var total int64
	if err := r.db.QueryRow(ctx, query).Scan(&total); err != nil {
		r.log.Error("Failed to count open polls", zap.Error(err))
		return 0, fmt.Errorf("count open polls: %w", err)
	}

	return total, nil
}

func (r *pollRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PollStatus) error {
	query := `UPDATE polls SET status = $2, updated_at = NOW() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update poll status",
			zap.Error(err),
			zap.String("poll_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update status of poll %s: %w", id.String(), err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("poll %s not found", id.String())
	}

	return nil
}
