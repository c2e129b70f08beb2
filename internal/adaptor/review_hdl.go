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

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// CreateReview handles POST /api/turfs/{turfId}/reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	turfID := chi.URLParam(r, "turfId")
	if turfID == "" {
		utils.ResponseBadRequest(w, "Turf ID is required", nil)
		return
	}

	var req request.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	review, err := h.service.CreateReview(r.Context(), turfID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create review")
		return
	}

	utils.ResponseCreated(w, "success", review)
}

// GetTurfReviews handles GET /api/turfs/{turfId}/reviews
func (h *ReviewHandler) GetTurfReviews(w http.ResponseWriter, r *http.Request) {
	turfID := chi.URLParam(r, "turfId")
	if turfID == "" {
		utils.ResponseBadRequest(w, "Turf ID is required", nil)
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	reviews, err := h.service.GetTurfReviews(r.Context(), turfID, req)
	if err != nil {
		handleServiceError(h.log, w, err, "get turf reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// GetTurfRating handles GET /api/turfs/{turfId}/rating
func (h *ReviewHandler) GetTurfRating(w http.ResponseWriter, r *http.Request) {
	turfID := chi.URLParam(r, "turfId")
	if turfID == "" {
		utils.ResponseBadRequest(w, "Turf ID is required", nil)
		return
	}

	rating, err := h.service.GetTurfRating(r.Context(), turfID)
	if err != nil {
		handleServiceError(h.log, w, err, "get turf rating")
		return
	}

	utils.ResponseSuccess(w, "success", rating)
}

// DeleteReview handles DELETE /api/reviews/{id}
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "id")
	if reviewID == "" {
		utils.ResponseBadRequest(w, "Review ID is required", nil)
		return
	}

	if err := h.service.DeleteReview(r.Context(), reviewID); err != nil {
		handleServiceError(h.log, w, err, "delete review")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
