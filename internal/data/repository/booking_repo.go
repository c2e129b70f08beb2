package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"turf-booking/internal/data/entity"
	"turf-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ErrOverlap is returned by CreateGuarded when the requested interval
// collides with a non-cancelled booking for the same turf and date.
var ErrOverlap = errors.New("booking interval overlaps an existing booking")

type BookingRepository interface {
	// CreateGuarded runs the conflict check and the insert inside one
	// transaction, locking candidate rows so two concurrent requests for
	// the same turf, date and overlapping interval cannot both commit.
	CreateGuarded(ctx context.Context, booking *entity.Booking) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	FindByTurfAndDate(ctx context.Context, turfID uuid.UUID, date time.Time, status *string) ([]*entity.Booking, error)
	FindActiveByTurfAndDate(ctx context.Context, turfID uuid.UUID, date time.Time) ([]*entity.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, reference, user_id, turf_id, sport_id, date, start_minute, end_minute, total_amount, status, payment_status, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(
		&b.ID,
		&b.Reference,
		&b.UserID,
		&b.TurfID,
		&b.SportID,
		&b.Date,
		&b.StartMinute,
		&b.EndMinute,
		&b.TotalAmount,
		&b.Status,
		&b.PaymentStatus,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) CreateGuarded(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock every candidate row that would overlap. The half-open overlap
	// test is start < existing_end AND existing_start < end.
	lockQuery := `
		SELECT id
		FROM bookings
		WHERE turf_id = $1
		  AND date = $2
		  AND status <> 'cancelled'
		  AND start_minute < $4
		  AND end_minute > $3
		FOR UPDATE
	`

	rows, err := tx.Query(ctx, lockQuery, booking.TurfID, booking.Date, booking.StartMinute, booking.EndMinute)
	if err != nil {
		r.log.Error("Failed to lock candidate bookings",
			zap.Error(err),
			zap.String("turf_id", booking.TurfID.String()),
		)
		return fmt.Errorf("lock candidate bookings: %w", err)
	}

	conflict := false
	for rows.Next() {
		conflict = true
	}
	rowsErr := rows.Err()
	rows.Close()
	if rowsErr != nil {
		return fmt.Errorf("scan candidate bookings: %w", rowsErr)
	}
	if conflict {
		return ErrOverlap
	}

	insert := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err = tx.Exec(ctx, insert,
		booking.ID,
		booking.Reference,
		booking.UserID,
		booking.TurfID,
		booking.SportID,
		booking.Date,
		booking.StartMinute,
		booking.EndMinute,
		booking.TotalAmount,
		booking.Status,
		booking.PaymentStatus,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("reference", booking.Reference),
			zap.String("turf_id", booking.TurfID.String()),
		)
		return fmt.Errorf("insert booking %s: %w", booking.Reference, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit booking %s: %w", booking.Reference, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE user_id = $1`

	var total int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&total); err != nil {
		r.log.Error("Failed to count bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count bookings by user ID %s: %w", userID.String(), err)
	}

	return total, nil
}

func (r *bookingRepository) FindByTurfAndDate(ctx context.Context, turfID uuid.UUID, date time.Time, status *string) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE turf_id = $1
		  AND date = $2
		  AND ($3::text IS NULL OR status = $3)
		ORDER BY start_minute
	`

	rows, err := r.db.Query(ctx, query, turfID, date, status)
	if err != nil {
		r.log.Error("Failed to find bookings by turf and date",
			zap.Error(err),
			zap.String("turf_id", turfID.String()),
			zap.Time("date", date),
		)
		return nil, fmt.Errorf("find bookings for turf %s: %w", turfID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

// FindActiveByTurfAndDate returns the non-cancelled bookings whose intervals
// occupy the turf on the given date. This is the input of the overlap guard
// and the bookable-slot computation.
func (r *bookingRepository) FindActiveByTurfAndDate(ctx context.Context, turfID uuid.UUID, date time.Time) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE turf_id = $1
		  AND date = $2
		  AND status <> 'cancelled'
		ORDER BY start_minute
	`

	rows, err := r.db.Query(ctx, query, turfID, date)
	if err != nil {
		r.log.Error("Failed to find active bookings",
			zap.Error(err),
			zap.String("turf_id", turfID.String()),
			zap.Time("date", date),
		)
		return nil, fmt.Errorf("find active bookings for turf %s: %w", turfID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update status of booking %s: %w", id.String(), err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	return nil
}

func (r *bookingRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	query := `UPDATE bookings SET payment_status = $2, updated_at = NOW() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update booking payment status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("payment_status", string(status)),
		)
		return fmt.Errorf("update payment status of booking %s: %w", id.String(), err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	return nil
}
