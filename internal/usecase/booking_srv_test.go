package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"campus-events/internal/data/entity"
	"campus-events/internal/data/repository"
	"campus-events/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBookingTestService(bookingRepo *MockBookingRepository, eventRepo *MockEventRepository, userRepo *MockUserRepository) BookingService {
	repo := &repository.Repository{
		User:    userRepo,
		Event:   eventRepo,
		Booking: bookingRepo,
	}
	return NewBookingService(repo, zap.NewNop())
}

func testUser(email string) *entity.User {
	return &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username:     "alice",
		Email:        email,
		PasswordHash: "hashed",
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}
}

func testEvent(slug string) *entity.Event {
	return &entity.Event{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Slug:      slug,
		Name:      "Hackathon 2025",
		Location:  "HTTPS Building",
		EventDate: "October 23, 2025",
		EventTime: "9:00 AM - 5:00 PM",
		IsActive:  true,
	}
}

func testBooking(ownerKey string, status entity.BookingStatus) *entity.Booking {
	return &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Reference:     "BOOK-20251023-090000-0001",
		OwnerKey:      ownerKey,
		EventSlug:     "tech-conference",
		EventName:     "Hackathon 2025",
		EventLocation: "HTTPS Building",
		EventDate:     "October 23, 2025",
		EventTime:     "9:00 AM - 5:00 PM",
		FirstName:     "Alice",
		LastName:      "Smith",
		Email:         ownerKey,
		TicketCount:   2,
		Status:        status,
	}
}

func validCreateRequest() *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		EventSelect: "tech-conference",
		FirstName:   "Alice",
		LastName:    "Smith",
		Email:       "Alice@Campus.edu",
		TicketCount: 2,
	}
}

func TestCreateBooking_Guest(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	eventRepo := new(MockEventRepository)
	userRepo := new(MockUserRepository)
	service := newBookingTestService(bookingRepo, eventRepo, userRepo)

	eventRepo.On("FindBySlug", mock.Anything, "tech-conference").Return(testEvent("tech-conference"), nil)

	var created *entity.Booking
	bookingRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Booking")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.Booking)
		}).
		Return(nil)

	resp, err := service.CreateBooking(context.Background(), "", validCreateRequest())

	require.NoError(t, err)
	require.NotNil(t, resp)
	require.NotNil(t, created)

	// Guest bookings are keyed by the submitted email, normalized
	assert.Equal(t, "alice@campus.edu", created.OwnerKey)
	assert.Nil(t, created.UserID)
	assert.Equal(t, entity.BookingStatusPending, created.Status)
	assert.True(t, strings.HasPrefix(created.Reference, "BOOK-"))

	// Event display fields come from the lookup
	assert.Equal(t, "Hackathon 2025", resp.EventName)
	assert.Equal(t, "HTTPS Building", resp.EventLocation)
	assert.Equal(t, "October 23, 2025", resp.EventDate)

	bookingRepo.AssertExpectations(t)
	eventRepo.AssertExpectations(t)
}

func TestCreateBooking_Authenticated(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	eventRepo := new(MockEventRepository)
	userRepo := new(MockUserRepository)
	service := newBookingTestService(bookingRepo, eventRepo, userRepo)

	user := testUser("Alice@Campus.edu")
	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	eventRepo.On("FindBySlug", mock.Anything, "tech-conference").Return(testEvent("tech-conference"), nil)

	var created *entity.Booking
	bookingRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Booking")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.Booking)
		}).
		Return(nil)

	req := validCreateRequest()
	req.Email = "different@elsewhere.com" // account email wins over the form email

	resp, err := service.CreateBooking(context.Background(), user.ID.String(), req)

	require.NoError(t, err)
	require.NotNil(t, resp)
	require.NotNil(t, created)

	assert.Equal(t, "alice@campus.edu", created.OwnerKey)
	require.NotNil(t, created.UserID)
	assert.Equal(t, user.ID, *created.UserID)

	bookingRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestCreateBooking_UnknownEventGetsPlaceholders(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	eventRepo := new(MockEventRepository)
	userRepo := new(MockUserRepository)
	service := newBookingTestService(bookingRepo, eventRepo, userRepo)

	eventRepo.On("FindBySlug", mock.Anything, "mystery-event").Return(nil, nil)
	bookingRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Booking")).Return(nil)

	req := validCreateRequest()
	req.EventSelect = "mystery-event"

	resp, err := service.CreateBooking(context.Background(), "", req)

	require.NoError(t, err)
	assert.Equal(t, entity.PlaceholderEventName, resp.EventName)
	assert.Equal(t, entity.PlaceholderEventLocation, resp.EventLocation)
	assert.Equal(t, entity.PlaceholderEventDate, resp.EventDate)
	assert.Equal(t, entity.PlaceholderEventTime, resp.EventTime)
	assert.Equal(t, "mystery-event", resp.EventSlug)
}

func TestCreateBooking_ValidationFailure(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	eventRepo := new(MockEventRepository)
	userRepo := new(MockUserRepository)
	service := newBookingTestService(bookingRepo, eventRepo, userRepo)

	req := validCreateRequest()
	req.Email = "not-an-email"
	req.TicketCount = 0

	resp, err := service.CreateBooking(context.Background(), "", req)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "validation failed")
	bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBooking_UserNotFound(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	eventRepo := new(MockEventRepository)
	userRepo := new(MockUserRepository)
	service := newBookingTestService(bookingRepo, eventRepo, userRepo)

	unknownID := uuid.New()
	userRepo.On("FindByID", mock.Anything, unknownID).Return(nil, nil)

	resp, err := service.CreateBooking(context.Background(), unknownID.String(), validCreateRequest())

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetUserBookings(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	eventRepo := new(MockEventRepository)
	userRepo := new(MockUserRepository)
	service := newBookingTestService(bookingRepo, eventRepo, userRepo)

	user := testUser("alice@campus.edu")
	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	bookings := []*entity.Booking{
		testBooking("alice@campus.edu", entity.BookingStatusPending),
		testBooking("alice@campus.edu", entity.BookingStatusConfirmed),
	}
	bookingRepo.On("FindByOwnerKey", mock.Anything, "alice@campus.edu", false, 10, 10).Return(bookings, nil)
	bookingRepo.On("CountByOwnerKey", mock.Anything, "alice@campus.edu", false).Return(int64(12), nil)

	req := &request.PaginatedRequest{Page: 2, PerPage: 10}
	resp, err := service.GetUserBookings(context.Background(), user.ID.String(), req, false)

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, int64(12), resp.Pagination.Total)
	assert.Equal(t, 2, resp.Pagination.Page)
	assert.Equal(t, 2, resp.Pagination.TotalPages)

	bookingRepo.AssertExpectations(t)
}

func TestGetRecentBookings_LimitsToThree(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	eventRepo := new(MockEventRepository)
	userRepo := new(MockUserRepository)
	service := newBookingTestService(bookingRepo, eventRepo, userRepo)

	user := testUser("alice@campus.edu")
	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	bookings := []*entity.Booking{
		testBooking("alice@campus.edu", entity.BookingStatusPending),
	}
	bookingRepo.On("FindByOwnerKey", mock.Anything, "alice@campus.edu", false, recentBookingsLimit, 0).Return(bookings, nil)

	resp, err := service.GetRecentBookings(context.Background(), user.ID.String())

	require.NoError(t, err)
	assert.Len(t, resp, 1)
	bookingRepo.AssertExpectations(t)
}

func TestGetBooking_ForeignBookingLooksMissing(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	eventRepo := new(MockEventRepository)
	userRepo := new(MockUserRepository)
	service := newBookingTestService(bookingRepo, eventRepo, userRepo)

	user := testUser("alice@campus.edu")
	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	foreign := testBooking("bob@campus.edu", entity.BookingStatusPending)
	bookingRepo.On("FindByID", mock.Anything, foreign.ID).Return(foreign, nil)

	resp, err := service.GetBooking(context.Background(), user.ID.String(), foreign.ID.String())

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "not found")
}

func TestCancelBooking_Success(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	eventRepo := new(MockEventRepository)
	userRepo := new(MockUserRepository)
	service := newBookingTestService(bookingRepo, eventRepo, userRepo)

	user := testUser("alice@campus.edu")
	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	booking := testBooking("alice@campus.edu", entity.BookingStatusPending)
	bookingRepo.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	bookingRepo.On("TransitionStatus", mock.Anything, booking.ID, entity.BookingStatusPending, entity.BookingStatusCancelled).Return(true, nil)

	err := service.CancelBooking(context.Background(), user.ID.String(), booking.ID.String())

	require.NoError(t, err)
	bookingRepo.AssertExpectations(t)
}

func TestCancelBooking_AlreadyCancelledIsNoOp(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	eventRepo := new(MockEventRepository)
	userRepo := new(MockUserRepository)
	service := newBookingTestService(bookingRepo, eventRepo, userRepo)

	user := testUser("alice@campus.edu")
	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	booking := testBooking("alice@campus.edu", entity.BookingStatusCancelled)
	bookingRepo.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)

	err := service.CancelBooking(context.Background(), user.ID.String(), booking.ID.String())

	require.NoError(t, err)
	bookingRepo.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelBooking_CompletedIsRejected(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	eventRepo := new(MockEventRepository)
	userRepo := new(MockUserRepository)
	service := newBookingTestService(bookingRepo, eventRepo, userRepo)

	user := testUser("alice@campus.edu")
	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	booking := testBooking("alice@campus.edu", entity.BookingStatusCompleted)
	bookingRepo.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)

	err := service.CancelBooking(context.Background(), user.ID.String(), booking.ID.String())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot cancel")
}

func TestCancelBooking_LostRaceToConcurrentCancel(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	eventRepo := new(MockEventRepository)
	userRepo := new(MockUserRepository)
	service := newBookingTestService(bookingRepo, eventRepo, userRepo)

	user := testUser("alice@campus.edu")
	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	booking := testBooking("alice@campus.edu", entity.BookingStatusPending)
	cancelled := testBooking("alice@campus.edu", entity.BookingStatusCancelled)
	cancelled.ID = booking.ID

	// Another writer cancelled first; both ended at cancelled, so no-op
	bookingRepo.On("FindByID", mock.Anything, booking.ID).Return(booking, nil).Once()
	bookingRepo.On("TransitionStatus", mock.Anything, booking.ID, entity.BookingStatusPending, entity.BookingStatusCancelled).Return(false, nil)
	bookingRepo.On("FindByID", mock.Anything, booking.ID).Return(cancelled, nil).Once()

	err := service.CancelBooking(context.Background(), user.ID.String(), booking.ID.String())

	require.NoError(t, err)
	bookingRepo.AssertExpectations(t)
}

func TestCancelBooking_LostRaceToConcurrentComplete(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	eventRepo := new(MockEventRepository)
	userRepo := new(MockUserRepository)
	service := newBookingTestService(bookingRepo, eventRepo, userRepo)

	user := testUser("alice@campus.edu")
	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	booking := testBooking("alice@campus.edu", entity.BookingStatusConfirmed)
	completed := testBooking("alice@campus.edu", entity.BookingStatusCompleted)
	completed.ID = booking.ID

	bookingRepo.On("FindByID", mock.Anything, booking.ID).Return(booking, nil).Once()
	bookingRepo.On("TransitionStatus", mock.Anything, booking.ID, entity.BookingStatusConfirmed, entity.BookingStatusCancelled).Return(false, nil)
	bookingRepo.On("FindByID", mock.Anything, booking.ID).Return(completed, nil).Once()

	err := service.CancelBooking(context.Background(), user.ID.String(), booking.ID.String())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot cancel")
}

func TestUpdateBookingStatus_Confirm(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	eventRepo := new(MockEventRepository)
	userRepo := new(MockUserRepository)
	service := newBookingTestService(bookingRepo, eventRepo, userRepo)

	booking := testBooking("alice@campus.edu", entity.BookingStatusPending)
	bookingRepo.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	bookingRepo.On("TransitionStatus", mock.Anything, booking.ID, entity.BookingStatusPending, entity.BookingStatusConfirmed).Return(true, nil)

	resp, err := service.UpdateBookingStatus(context.Background(), booking.ID.String(), "confirmed")

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, entity.BookingStatusConfirmed, resp.Status)
	bookingRepo.AssertExpectations(t)
}

func TestUpdateBookingStatus_InvalidTransition(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	eventRepo := new(MockEventRepository)
	userRepo := new(MockUserRepository)
	service := newBookingTestService(bookingRepo, eventRepo, userRepo)

	booking := testBooking("alice@campus.edu", entity.BookingStatusCompleted)
	bookingRepo.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)

	resp, err := service.UpdateBookingStatus(context.Background(), booking.ID.String(), "pending")

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "invalid status transition")
	bookingRepo.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateBookingStatus_UnknownStatus(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	eventRepo := new(MockEventRepository)
	userRepo := new(MockUserRepository)
	service := newBookingTestService(bookingRepo, eventRepo, userRepo)

	resp, err := service.UpdateBookingStatus(context.Background(), uuid.New().String(), "archived")

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "invalid booking status")
}

func TestUpdateBookingStatus_SameStatusIsNoOp(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	eventRepo := new(MockEventRepository)
	userRepo := new(MockUserRepository)
	service := newBookingTestService(bookingRepo, eventRepo, userRepo)

	booking := testBooking("alice@campus.edu", entity.BookingStatusConfirmed)
	bookingRepo.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)

	resp, err := service.UpdateBookingStatus(context.Background(), booking.ID.String(), "confirmed")

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, entity.BookingStatusConfirmed, resp.Status)
	bookingRepo.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
