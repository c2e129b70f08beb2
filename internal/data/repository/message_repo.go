package repository

import (
	"context"
	"fmt"

	"turf-booking/internal/data/entity"
	"turf-booking/pkg/database"

	"go.uber.org/zap"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Message, error)
	CountAll(ctx context.Context) (int64, error)
}

type messageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMessageRepository(db database.PgxIface, log *zap.Logger) MessageRepository {
	return &messageRepository{
		db:  db,
		log: log.With(zap.String("repository", "message")),
	}
}

func (r *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	query := `
		INSERT INTO messages (id, user_id, body, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		message.ID,
		message.UserID,
		message.Body,
		message.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create message",
			zap.Error(err),
			zap.String("user_id", message.UserID.String()),
		)
		return fmt.Errorf("create message by user %s: %w", message.UserID.String(), err)
	}

	return nil
}

// FindAll returns messages oldest first so the board reads top to bottom.
func (r *messageRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Message, error) {
	query := `
		SELECT id, user_id, body, created_at
		FROM messages
		ORDER BY created_at
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find messages",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find messages: %w", err)
	}
	defer rows.Close()

	var messages []*entity.Message
	for rows.Next() {
		var message entity.Message
		err := rows.Scan(
			&message.ID,
			&message.UserID,
			&message.Body,
			&message.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan message row", zap.Error(err))
			return nil, fmt.Errorf("scan message row: %w", err)
		}
		messages = append(messages, &message)
	}

	return messages, nil
}

func (r *messageRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM messages`

	var total int64
	if err := r.db.QueryRow(ctx, query).Scan(&total); err != nil {
		r.log.Error("Failed to count messages", zap.Error(err))
		return 0, fmt.Errorf("count messages: %w", err)
	}

	return total, nil
}
