package repository

import (
	"context"
	"testing"
	"time"

	"campus-events/internal/data/entity"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var bookingColumnNames = []string{
	"id", "reference", "user_id", "owner_key", "event_slug", "event_name",
	"event_location", "event_date", "event_time", "first_name", "last_name",
	"email", "phone", "student_id", "ticket_count", "special_requests",
	"status", "created_at", "updated_at",
}

func bookingRow(booking *entity.Booking) *pgxmock.Rows {
	return pgxmock.NewRows(bookingColumnNames).AddRow(
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
}

func sampleBooking() *entity.Booking {
	return &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Reference:     "BOOK-20251023-090000-4821",
		OwnerKey:      "alice@campus.edu",
		EventSlug:     "tech-conference",
		EventName:     "Hackathon 2025",
		EventLocation: "HTTPS Building",
		EventDate:     "October 23, 2025",
		EventTime:     "9:00 AM - 5:00 PM",
		FirstName:     "Alice",
		LastName:      "Smith",
		Email:         "alice@campus.edu",
		TicketCount:   2,
		Status:        entity.BookingStatusPending,
	}
}

func TestBookingRepository_Create(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	repo := NewBookingRepository(mockDB, zap.NewNop())
	booking := sampleBooking()

	mockDB.ExpectExec("INSERT INTO bookings").
		WithArgs(
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
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), booking)

	require.NoError(t, err)
	require.NoError(t, mockDB.ExpectationsWereMet())
}

func TestBookingRepository_FindByID(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	repo := NewBookingRepository(mockDB, zap.NewNop())
	booking := sampleBooking()

	mockDB.ExpectQuery("SELECT (.+) FROM bookings").
		WithArgs(booking.ID).
		WillReturnRows(bookingRow(booking))

	found, err := repo.FindByID(context.Background(), booking.ID)

	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, booking.ID, found.ID)
	assert.Equal(t, booking.Reference, found.Reference)
	assert.Equal(t, entity.BookingStatusPending, found.Status)
	require.NoError(t, mockDB.ExpectationsWereMet())
}

func TestBookingRepository_FindByID_NotFound(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	repo := NewBookingRepository(mockDB, zap.NewNop())
	id := uuid.New()

	mockDB.ExpectQuery("SELECT (.+) FROM bookings").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(bookingColumnNames))

	found, err := repo.FindByID(context.Background(), id)

	// Missing rows are not an error
	require.NoError(t, err)
	assert.Nil(t, found)
	require.NoError(t, mockDB.ExpectationsWereMet())
}

func TestBookingRepository_FindByOwnerKey(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	repo := NewBookingRepository(mockDB, zap.NewNop())
	booking := sampleBooking()

	mockDB.ExpectQuery("SELECT (.+) FROM bookings").
		WithArgs("alice@campus.edu", false, 10, 0).
		WillReturnRows(bookingRow(booking))

	bookings, err := repo.FindByOwnerKey(context.Background(), "alice@campus.edu", false, 10, 0)

	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, booking.Reference, bookings[0].Reference)
	require.NoError(t, mockDB.ExpectationsWereMet())
}

func TestBookingRepository_CountByOwnerKey(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	repo := NewBookingRepository(mockDB, zap.NewNop())

	mockDB.ExpectQuery("SELECT COUNT").
		WithArgs("alice@campus.edu", true).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(7)))

	count, err := repo.CountByOwnerKey(context.Background(), "alice@campus.edu", true)

	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
	require.NoError(t, mockDB.ExpectationsWereMet())
}

func TestBookingRepository_TransitionStatus_Applied(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	repo := NewBookingRepository(mockDB, zap.NewNop())
	id := uuid.New()

	mockDB.ExpectExec("UPDATE bookings SET status").
		WithArgs(id, entity.BookingStatusPending, entity.BookingStatusConfirmed).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	ok, err := repo.TransitionStatus(context.Background(), id, entity.BookingStatusPending, entity.BookingStatusConfirmed)

	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, mockDB.ExpectationsWereMet())
}

func TestBookingRepository_TransitionStatus_StaleFrom(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	repo := NewBookingRepository(mockDB, zap.NewNop())
	id := uuid.New()

	// No row matches the expected current status, so nothing is written
	mockDB.ExpectExec("UPDATE bookings SET status").
		WithArgs(id, entity.BookingStatusPending, entity.BookingStatusCancelled).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	ok, err := repo.TransitionStatus(context.Background(), id, entity.BookingStatusPending, entity.BookingStatusCancelled)

	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, mockDB.ExpectationsWereMet())
}
