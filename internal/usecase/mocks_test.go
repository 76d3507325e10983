package usecase

import (
	"context"

	"campus-events/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	args := m.Called(ctx, token)
	if session, ok := args.Get(0).(*entity.Session); ok {
		return session, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSessionRepository) Revoke(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockSessionRepository) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockSessionRepository) CleanExpiredSessions(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event *entity.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	args := m.Called(ctx, id)
	if event, ok := args.Get(0).(*entity.Event); ok {
		return event, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventRepository) FindBySlug(ctx context.Context, slug string) (*entity.Event, error) {
	args := m.Called(ctx, slug)
	if event, ok := args.Get(0).(*entity.Event); ok {
		return event, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventRepository) FindAllActive(ctx context.Context) ([]*entity.Event, error) {
	args := m.Called(ctx)
	if events, ok := args.Get(0).([]*entity.Event); ok {
		return events, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	args := m.Called(ctx, id)
	if booking, ok := args.Get(0).(*entity.Booking); ok {
		return booking, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepository) FindByReference(ctx context.Context, reference string) (*entity.Booking, error) {
	args := m.Called(ctx, reference)
	if booking, ok := args.Get(0).(*entity.Booking); ok {
		return booking, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepository) FindByOwnerKey(ctx context.Context, ownerKey string, includeCancelled bool, limit, offset int) ([]*entity.Booking, error) {
	args := m.Called(ctx, ownerKey, includeCancelled, limit, offset)
	if bookings, ok := args.Get(0).([]*entity.Booking); ok {
		return bookings, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepository) CountByOwnerKey(ctx context.Context, ownerKey string, includeCancelled bool) (int64, error) {
	args := m.Called(ctx, ownerKey, includeCancelled)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from, to entity.BookingStatus) (bool, error) {
	args := m.Called(ctx, id, from, to)
	return args.Bool(0), args.Error(1)
}
