package wire

import (
	"turf-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// POST /api/quote - price an interval without reserving it
	r.Post("/api/quote", bookingHandler.GetQuote)

	r.Route("/api/bookings", func(r chi.Router) {
		r.Post("/", bookingHandler.CreateBooking)
		r.Get("/{id}", bookingHandler.GetBooking)
		r.Put("/{id}/confirm", bookingHandler.ConfirmBooking)
		r.Put("/{id}/cancel", bookingHandler.CancelBooking)
		r.Put("/{id}/payment", bookingHandler.UpdatePaymentStatus)
	})

	// GET /api/users/{userId}/bookings - booking history
	r.Get("/api/users/{userId}/bookings", bookingHandler.GetUserBookings)

	// GET /api/owner/turfs/{turfId}/bookings - owner day view
	r.Get("/api/owner/turfs/{turfId}/bookings", bookingHandler.GetTurfBookings)
}
