package adaptor

import (
	"encoding/json"
	"net/http"

	"turf-booking/internal/dto/request"
	"turf-booking/internal/usecase"
	"turf-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	pricing usecase.PricingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, pricing usecase.PricingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		pricing: pricing,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// GetQuote handles POST /api/quote
func (h *BookingHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	var req request.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	quote, err := h.pricing.CalculateQuote(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "calculate quote")
		return
	}

	utils.ResponseSuccess(w, "success", quote)
}

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// GetBooking handles GET /api/bookings/{id}
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.GetBookingByID(r.Context(), bookingID)
	if err != nil {
		handleServiceError(h.log, w, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// GetUserBookings handles GET /api/users/{userId}/bookings
func (h *BookingHandler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	bookings, err := h.service.GetUserBookings(r.Context(), userID, req)
	if err != nil {
		handleServiceError(h.log, w, err, "get user bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetTurfBookings handles GET /api/owner/turfs/{turfId}/bookings?date=...&status=...
func (h *BookingHandler) GetTurfBookings(w http.ResponseWriter, r *http.Request) {
	turfID := chi.URLParam(r, "turfId")
	if turfID == "" {
		utils.ResponseBadRequest(w, "Turf ID is required", nil)
		return
	}

	query := r.URL.Query()
	date := query.Get("date")
	if date == "" {
		utils.ResponseBadRequest(w, "date query parameter is required", nil)
		return
	}

	bookings, err := h.service.GetTurfBookings(r.Context(), turfID, date, query.Get("status"))
	if err != nil {
		handleServiceError(h.log, w, err, "get turf bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// ConfirmBooking handles PUT /api/bookings/{id}/confirm
func (h *BookingHandler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.ConfirmBooking(r.Context(), bookingID)
	if err != nil {
		handleServiceError(h.log, w, err, "confirm booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// CancelBooking handles PUT /api/bookings/{id}/cancel
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.CancelBooking(r.Context(), bookingID)
	if err != nil {
		handleServiceError(h.log, w, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// UpdatePaymentStatus handles PUT /api/bookings/{id}/payment
func (h *BookingHandler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.UpdatePaymentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.UpdatePaymentStatus(r.Context(), bookingID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update payment status")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}
