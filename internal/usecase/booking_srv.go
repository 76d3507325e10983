package usecase

import (
	"context"
	"fmt"
	"time"

	"campus-events/internal/data/entity"
	"campus-events/internal/data/repository"
	"campus-events/internal/dto/request"
	"campus-events/internal/dto/response"
	"campus-events/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const recentBookingsLimit = 3

type BookingService interface {
	// userID is empty for guest submissions; the booking is then keyed
	// by the submitted email.
	CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)

	// Dashboard (require auth)
	GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest, includeCancelled bool) (*response.PaginatedResponse[response.BookingResponse], error)
	GetRecentBookings(ctx context.Context, userID string) ([]response.BookingResponse, error)
	GetBooking(ctx context.Context, userID string, bookingID string) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, userID string, bookingID string) error

	// Admin endpoints
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	UpdateBookingStatus(ctx context.Context, bookingID string, status string) (*response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository // grouping booking, event & user repos
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Resolve the submitting identity. Authenticated users own the booking
	// under their account email; guests fall back to the submitted email.
	var ownerKey string
	var ownerID *uuid.UUID

	if userID != "" {
		userUUID, err := uuid.Parse(userID)
		if err != nil {
			return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
		}

		user, err := s.repo.User.FindByID(ctx, userUUID)
		if err != nil {
			s.log.Error("Failed to load submitting user", zap.Error(err), zap.String("user_id", userID))
			return nil, fmt.Errorf("load user: %w", err)
		}
		if user == nil {
			return nil, fmt.Errorf("user %s not found", userID)
		}

		ownerID = &user.ID
		ownerKey = utils.NormalizeOwnerKey(user.Email)
	} else {
		ownerKey = utils.NormalizeOwnerKey(req.Email)
		if ownerKey == "" {
			ownerKey = "guest"
		}
	}

	// Resolve the event selection against the lookup. An unknown
	// selection still books, with placeholder display fields.
	eventName := entity.PlaceholderEventName
	eventLocation := entity.PlaceholderEventLocation
	eventDate := entity.PlaceholderEventDate
	eventTime := entity.PlaceholderEventTime

	event, err := s.repo.Event.FindBySlug(ctx, req.EventSelect)
	if err != nil {
		s.log.Error("Failed to resolve event selection",
			zap.Error(err),
			zap.String("event_select", req.EventSelect),
		)
		return nil, fmt.Errorf("resolve event: %w", err)
	}
	if event != nil {
		eventName = event.Name
		eventLocation = event.Location
		eventDate = event.EventDate
		eventTime = event.EventTime
	}

	// Create booking entity
	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Reference:       utils.GenerateBookingRef(),
		UserID:          ownerID,
		OwnerKey:        ownerKey,
		EventSlug:       req.EventSelect,
		EventName:       eventName,
		EventLocation:   eventLocation,
		EventDate:       eventDate,
		EventTime:       eventTime,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		StudentID:       req.StudentID,
		TicketCount:     req.TicketCount,
		SpecialRequests: req.SpecialRequests,
		Status:          entity.BookingStatusPending,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("owner_key", ownerKey),
			zap.String("event_select", req.EventSelect),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reference", booking.Reference),
		zap.String("owner_key", ownerKey),
		zap.String("event_name", eventName),
		zap.Int("ticket_count", booking.TicketCount),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest, includeCancelled bool) (*response.PaginatedResponse[response.BookingResponse], error) {
	ownerKey, err := s.resolveOwnerKey(ctx, userID)
	if err != nil {
		return nil, err
	}

	limit := req.Limit()
	offset := req.Offset()

	bookings, err := s.repo.Booking.FindByOwnerKey(ctx, ownerKey, includeCancelled, limit, offset)
	if err != nil {
		s.log.Error("Failed to get user bookings",
			zap.Error(err),
			zap.String("owner_key", ownerKey),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByOwnerKey(ctx, ownerKey, includeCancelled)
	if err != nil {
		s.log.Error("Failed to count user bookings", zap.Error(err))
		return nil, fmt.Errorf("count user bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.BookingToResponse(booking)
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

func (s *bookingService) GetRecentBookings(ctx context.Context, userID string) ([]response.BookingResponse, error) {
	ownerKey, err := s.resolveOwnerKey(ctx, userID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.repo.Booking.FindByOwnerKey(ctx, ownerKey, false, recentBookingsLimit, 0)
	if err != nil {
		s.log.Error("Failed to get recent bookings",
			zap.Error(err),
			zap.String("owner_key", ownerKey),
		)
		return nil, fmt.Errorf("get recent bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.BookingToResponse(booking)
	}

	return bookingResponses, nil
}

func (s *bookingService) GetBooking(ctx context.Context, userID string, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findOwnedBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, userID string, bookingID string) error {
	booking, err := s.findOwnedBooking(ctx, userID, bookingID)
	if err != nil {
		return err
	}

	// Cancelling twice is a no-op
	if booking.Status == entity.BookingStatusCancelled {
		return nil
	}

	if !booking.Status.CanTransitionTo(entity.BookingStatusCancelled) {
		return fmt.Errorf("cannot cancel a %s booking", string(booking.Status))
	}

	ok, err := s.repo.Booking.TransitionStatus(ctx, booking.ID, booking.Status, entity.BookingStatusCancelled)
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}
	if !ok {
		// Lost the race to a concurrent transition. If the other writer
		// cancelled too, this call is still a no-op success.
		current, err := s.repo.Booking.FindByID(ctx, booking.ID)
		if err != nil {
			return fmt.Errorf("cancel booking: %w", err)
		}
		if current == nil || current.Status != entity.BookingStatusCancelled {
			return fmt.Errorf("cannot cancel booking in its current state")
		}
		return nil
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reference", booking.Reference),
	)

	return nil
}

// ==================== ADMIN METHODS ====================

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, bookingID string, status string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	next, valid := entity.ParseBookingStatus(status)
	if !valid {
		return nil, fmt.Errorf("invalid booking status %q", status)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	// Same-status update is a no-op
	if booking.Status == next {
		resp := response.BookingToResponse(booking)
		return &resp, nil
	}

	if !booking.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("invalid status transition from %s to %s", string(booking.Status), string(next))
	}

	ok, err := s.repo.Booking.TransitionStatus(ctx, booking.ID, booking.Status, next)
	if err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("invalid status transition: booking changed concurrently")
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", booking.ID.String()),
		zap.String("from", string(booking.Status)),
		zap.String("to", string(next)),
	)

	booking.Status = next
	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// ==================== HELPERS ====================

// resolveOwnerKey maps an authenticated user ID to the email namespace
// their bookings live under.
func (s *bookingService) resolveOwnerKey(ctx context.Context, userID string) (string, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return "", fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	user, err := s.repo.User.FindByID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to load user", zap.Error(err), zap.String("user_id", userID))
		return "", fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return "", fmt.Errorf("user %s not found", userID)
	}

	return utils.NormalizeOwnerKey(user.Email), nil
}

// findOwnedBooking loads a booking and checks it belongs to the caller.
// Foreign bookings look identical to missing ones.
func (s *bookingService) findOwnedBooking(ctx context.Context, userID string, bookingID string) (*entity.Booking, error) {
	ownerKey, err := s.resolveOwnerKey(ctx, userID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil || booking.OwnerKey != ownerKey {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	return booking, nil
}
