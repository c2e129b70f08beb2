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

type SlotHandler struct {
	service usecase.TimeSlotService
	log     *zap.Logger
}

func NewSlotHandler(service usecase.TimeSlotService, log *zap.Logger) *SlotHandler {
	return &SlotHandler{
		service: service,
		log:     log.With(zap.String("handler", "slot")),
	}
}

// CreateSlot handles POST /api/owner/turfs/{turfId}/slots
func (h *SlotHandler) CreateSlot(w http.ResponseWriter, r *http.Request) {
	turfID := chi.URLParam(r, "turfId")
	if turfID == "" {
		utils.ResponseBadRequest(w, "Turf ID is required", nil)
		return
	}

	var req request.TimeSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	slot, err := h.service.CreateSlot(r.Context(), turfID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create slot")
		return
	}

	utils.ResponseCreated(w, "success", slot)
}

// GetTurfSlots handles GET /api/turfs/{turfId}/slots
func (h *SlotHandler) GetTurfSlots(w http.ResponseWriter, r *http.Request) {
	turfID := chi.URLParam(r, "turfId")
	if turfID == "" {
		utils.ResponseBadRequest(w, "Turf ID is required", nil)
		return
	}

	slots, err := h.service.GetTurfSlots(r.Context(), turfID)
	if err != nil {
		handleServiceError(h.log, w, err, "get turf slots")
		return
	}

	utils.ResponseSuccess(w, "success", slots)
}

// GetBookableSlots handles GET /api/turfs/{turfId}/availability?sport_id=...&date=...
func (h *SlotHandler) GetBookableSlots(w http.ResponseWriter, r *http.Request) {
	turfID := chi.URLParam(r, "turfId")
	if turfID == "" {
		utils.ResponseBadRequest(w, "Turf ID is required", nil)
		return
	}

	query := r.URL.Query()
	sportID := query.Get("sport_id")
	date := query.Get("date")
	if sportID == "" || date == "" {
		utils.ResponseBadRequest(w, "sport_id and date query parameters are required", nil)
		return
	}

	slots, err := h.service.ListBookableSlots(r.Context(), turfID, sportID, date)
	if err != nil {
		handleServiceError(h.log, w, err, "list bookable slots")
		return
	}

	utils.ResponseSuccess(w, "success", slots)
}

// SetAvailability handles PUT /api/owner/slots/{id}/availability
func (h *SlotHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	slotID := chi.URLParam(r, "id")
	if slotID == "" {
		utils.ResponseBadRequest(w, "Slot ID is required", nil)
		return
	}

	var req request.SlotAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	slot, err := h.service.SetAvailability(r.Context(), slotID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "set slot availability")
		return
	}

	utils.ResponseSuccess(w, "success", slot)
}

// DeleteSlot handles DELETE /api/owner/slots/{id}
func (h *SlotHandler) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	slotID := chi.URLParam(r, "id")
	if slotID == "" {
		utils.ResponseBadRequest(w, "Slot ID is required", nil)
		return
	}

	if err := h.service.DeleteSlot(r.Context(), slotID); err != nil {
		handleServiceError(h.log, w, err, "delete slot")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
