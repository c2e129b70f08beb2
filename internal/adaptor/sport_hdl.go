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

type SportHandler struct {
	service usecase.SportService
	pricing usecase.PricingService
	log     *zap.Logger
}

func NewSportHandler(service usecase.SportService, pricing usecase.PricingService, log *zap.Logger) *SportHandler {
	return &SportHandler{
		service: service,
		pricing: pricing,
		log:     log.With(zap.String("handler", "sport")),
	}
}

// CreateSport handles POST /api/owner/turfs/{turfId}/sports
func (h *SportHandler) CreateSport(w http.ResponseWriter, r *http.Request) {
	turfID := chi.URLParam(r, "turfId")
	if turfID == "" {
		utils.ResponseBadRequest(w, "Turf ID is required", nil)
		return
	}

	var req request.SportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	sport, err := h.service.CreateSport(r.Context(), turfID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create sport")
		return
	}

	utils.ResponseCreated(w, "success", sport)
}

// GetSport handles GET /api/sports/{id}
func (h *SportHandler) GetSport(w http.ResponseWriter, r *http.Request) {
	sportID := chi.URLParam(r, "id")
	if sportID == "" {
		utils.ResponseBadRequest(w, "Sport ID is required", nil)
		return
	}

	sport, err := h.service.GetSportByID(r.Context(), sportID)
	if err != nil {
		handleServiceError(h.log, w, err, "get sport")
		return
	}

	utils.ResponseSuccess(w, "success", sport)
}

// GetTurfSports handles GET /api/turfs/{turfId}/sports
func (h *SportHandler) GetTurfSports(w http.ResponseWriter, r *http.Request) {
	turfID := chi.URLParam(r, "turfId")
	if turfID == "" {
		utils.ResponseBadRequest(w, "Turf ID is required", nil)
		return
	}

	sports, err := h.service.GetTurfSports(r.Context(), turfID)
	if err != nil {
		handleServiceError(h.log, w, err, "get turf sports")
		return
	}

	utils.ResponseSuccess(w, "success", sports)
}

// UpdateSport handles PUT /api/owner/sports/{id}
func (h *SportHandler) UpdateSport(w http.ResponseWriter, r *http.Request) {
	sportID := chi.URLParam(r, "id")
	if sportID == "" {
		utils.ResponseBadRequest(w, "Sport ID is required", nil)
		return
	}

	var req request.SportUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	sport, err := h.service.UpdateSport(r.Context(), sportID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update sport")
		return
	}

	utils.ResponseSuccess(w, "success", sport)
}

// DeleteSport handles DELETE /api/owner/sports/{id}
func (h *SportHandler) DeleteSport(w http.ResponseWriter, r *http.Request) {
	sportID := chi.URLParam(r, "id")
	if sportID == "" {
		utils.ResponseBadRequest(w, "Sport ID is required", nil)
		return
	}

	if err := h.service.DeleteSport(r.Context(), sportID); err != nil {
		handleServiceError(h.log, w, err, "delete sport")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetPrice handles GET /api/sports/{id}/price?date=2006-01-02
func (h *SportHandler) GetPrice(w http.ResponseWriter, r *http.Request) {
	sportID := chi.URLParam(r, "id")
	if sportID == "" {
		utils.ResponseBadRequest(w, "Sport ID is required", nil)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		utils.ResponseBadRequest(w, "date query parameter is required", nil)
		return
	}

	price, err := h.pricing.ResolvePrice(r.Context(), sportID, date)
	if err != nil {
		handleServiceError(h.log, w, err, "resolve price")
		return
	}

	utils.ResponseSuccess(w, "success", price)
}

// GetPriceRanges handles GET /api/sports/{id}/price-ranges
func (h *SportHandler) GetPriceRanges(w http.ResponseWriter, r *http.Request) {
	sportID := chi.URLParam(r, "id")
	if sportID == "" {
		utils.ResponseBadRequest(w, "Sport ID is required", nil)
		return
	}

	ranges, err := h.pricing.GetPriceRanges(r.Context(), sportID)
	if err != nil {
		handleServiceError(h.log, w, err, "get price ranges")
		return
	}

	utils.ResponseSuccess(w, "success", ranges)
}

// ReplacePriceRanges handles PUT /api/owner/sports/{id}/price-ranges
func (h *SportHandler) ReplacePriceRanges(w http.ResponseWriter, r *http.Request) {
	sportID := chi.URLParam(r, "id")
	if sportID == "" {
		utils.ResponseBadRequest(w, "Sport ID is required", nil)
		return
	}

	var req request.ReplacePriceRangesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	ranges, err := h.pricing.ReplacePriceRanges(r.Context(), sportID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "replace price ranges")
		return
	}

	utils.ResponseSuccess(w, "success", ranges)
}
