package wire

import (
	"lab-booking/internal/adaptor"
	"lab-booking/internal/data/repository"
	"lab-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/bookings - List open slots (filter by equipment and window)
		r.Get("/api/bookings", bookingHandler.GetBookings)

		// GET /api/user/bookings - The caller's reservations
		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)

		// PUT /api/bookings/{id}/claim - Reserve a slot
		r.Put("/api/bookings/{id}/claim", bookingHandler.Claim)
	})

	// Public routes
	// GET /api/public/bookings - Reserved public slots, passwords stripped
	r.Get("/api/public/bookings", bookingHandler.GetPublicBookings)

	// GET /api/booking-access - Resolve a shared booking link
	r.Get("/api/booking-access", bookingHandler.ResolveAccess)
}
