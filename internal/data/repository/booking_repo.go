package repository

import (
	"context"
	"fmt"

	"campus-events/internal/data/entity"
	"campus-events/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const bookingColumns = `id, reference, user_id, owner_key, event_slug, event_name,
		       event_location, event_date, event_time, first_name, last_name,
		       email, phone, student_id, ticket_count, special_requests,
		       status, created_at, updated_at`

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByReference(ctx context.Context, reference string) (*entity.Booking, error)
	FindByOwnerKey(ctx context.Context, ownerKey string, includeCancelled bool, limit, offset int) ([]*entity.Booking, error)
	CountByOwnerKey(ctx context.Context, ownerKey string, includeCancelled bool) (int64, error)

	// TransitionStatus is the single mutation entry point for booking
	// lifecycle changes. The current status is part of the WHERE clause,
	// so a concurrent transition loses cleanly instead of overwriting.
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to entity.BookingStatus) (bool, error)
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

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, reference, user_id, owner_key, event_slug, event_name,
		                      event_location, event_date, event_time, first_name, last_name,
		                      email, phone, student_id, ticket_count, special_requests,
		                      status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.Reference,
		booking.UserID,
		booking.OwnerKey,
		booking.EventSlug,
		booking.EventName,
		booking.EventLocation,
		booking.EventDate,
		booking.EventTime,
		booking.FirstName,
		booking.LastName,
		booking.Email,
		booking.Phone,
		booking.StudentID,
		booking.TicketCount,
		booking.SpecialRequests,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("reference", booking.Reference),
			zap.String("owner_key", booking.OwnerKey),
		)
		return fmt.Errorf("create booking %s: %w", booking.Reference, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE id = $1
	`

	booking, err := r.scanBooking(r.db.QueryRow(ctx, query, id))
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

func (r *bookingRepository) FindByReference(ctx context.Context, reference string) (*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE reference = $1
	`

	booking, err := r.scanBooking(r.db.QueryRow(ctx, query, reference))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by reference",
			zap.Error(err),
			zap.String("reference", reference),
		)
		return nil, fmt.Errorf("find booking by reference %s: %w", reference, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByOwnerKey(ctx context.Context, ownerKey string, includeCancelled bool, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE owner_key = $1 AND ($2 OR status <> 'cancelled')
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(ctx, query, ownerKey, includeCancelled, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by owner key",
			zap.Error(err),
			zap.String("owner_key", ownerKey),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings by owner key %s: %w", ownerKey, err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) CountByOwnerKey(ctx context.Context, ownerKey string, includeCancelled bool) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE owner_key = $1 AND ($2 OR status <> 'cancelled')`

	var count int64
	err := r.db.QueryRow(ctx, query, ownerKey, includeCancelled).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by owner key",
			zap.Error(err),
			zap.String("owner_key", ownerKey),
		)
		return 0, fmt.Errorf("count bookings by owner key %s: %w", ownerKey, err)
	}

	return count, nil
}

func (r *bookingRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from, to entity.BookingStatus) (bool, error) {
	query := `UPDATE bookings SET status = $3, updated_at = NOW() WHERE id = $1 AND status = $2`

	result, err := r.db.Exec(ctx, query, id, from, to)
	if err != nil {
		r.log.Error("Failed to transition booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("from", string(from)),
			zap.String("to", string(to)),
		)
		return false, fmt.Errorf("transition booking %s status %s -> %s: %w", id.String(), string(from), string(to), err)
	}

	return result.RowsAffected() > 0, nil
}

// scanBooking works for both pgx.Row and pgx.Rows
func (r *bookingRepository) scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.Reference,
		&booking.UserID,
		&booking.OwnerKey,
		&booking.EventSlug,
		&booking.EventName,
		&booking.EventLocation,
		&booking.EventDate,
		&booking.EventTime,
		&booking.FirstName,
		&booking.LastName,
		&booking.Email,
		&booking.Phone,
		&booking.StudentID,
		&booking.TicketCount,
		&booking.SpecialRequests,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
