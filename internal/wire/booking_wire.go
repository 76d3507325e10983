package wire

import (
	"campus-events/internal/adaptor"
	"campus-events/internal/data/repository"
	"campus-events/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== SUBMISSION (guest allowed) ====================
	// POST /api/bookings - Submit a booking; a session is used when
	// present, otherwise the booking is keyed by the submitted email
	r.With(middleware.OptionalAuth(repo.Session, log)).Post("/api/bookings", bookingHandler.CreateBooking)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/user/bookings - Full booking list for the dashboard
		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)

		// GET /api/user/bookings/recent - Summary view (3 most recent)
		r.Get("/api/user/bookings/recent", bookingHandler.GetRecentBookings)

		// GET /api/bookings/{id} - Booking details (own bookings only)
		r.Get("/api/bookings/{id}", bookingHandler.GetBooking)

		// DELETE /api/bookings/{id} - Cancel booking (own bookings only)
		r.Delete("/api/bookings/{id}", bookingHandler.CancelBooking)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		// Require both authentication AND admin role
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		// GET /api/admin/bookings/{id} - View any booking details
		r.Get("/{id}", bookingHandler.GetBookingByID)

		// PUT /api/admin/bookings/{id}/status - Transition booking status
		r.Put("/{id}/status", bookingHandler.UpdateBookingStatus)
	})
}
