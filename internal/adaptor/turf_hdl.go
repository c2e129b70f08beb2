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

const maxUploadSize = 10 << 20 // 10 MB

type TurfHandler struct {
	service usecase.TurfService
	log     *zap.Logger
}

func NewTurfHandler(service usecase.TurfService, log *zap.Logger) *TurfHandler {
	return &TurfHandler{
		service: service,
		log:     log.With(zap.String("handler", "turf")),
	}
}

// ListTurfs handles GET /api/turfs
func (h *TurfHandler) ListTurfs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	turfs, err := h.service.ListTurfs(r.Context(), query.Get("city"), req)
	if err != nil {
		handleServiceError(h.log, w, err, "list turfs")
		return
	}

	utils.ResponseSuccess(w, "success", turfs)
}

// GetTurf handles GET /api/turfs/{id}
func (h *TurfHandler) GetTurf(w http.ResponseWriter, r *http.Request) {
	turfID := chi.URLParam(r, "id")
	if turfID == "" {
		utils.ResponseBadRequest(w, "Turf ID is required", nil)
		return
	}

	turf, err := h.service.GetTurfByID(r.Context(), turfID)
	if err != nil {
		handleServiceError(h.log, w, err, "get turf")
		return
	}

	utils.ResponseSuccess(w, "success", turf)
}

// CreateTurf handles POST /api/owner/turfs
func (h *TurfHandler) CreateTurf(w http.ResponseWriter, r *http.Request) {
	var req request.TurfRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	turf, err := h.service.CreateTurf(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create turf")
		return
	}

	utils.ResponseCreated(w, "success", turf)
}

// GetOwnerTurfs handles GET /api/owner/{ownerId}/turfs
func (h *TurfHandler) GetOwnerTurfs(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, "ownerId")
	if ownerID == "" {
		utils.ResponseBadRequest(w, "Owner ID is required", nil)
		return
	}

	turfs, err := h.service.GetOwnerTurfs(r.Context(), ownerID)
	if err != nil {
		handleServiceError(h.log, w, err, "get owner turfs")
		return
	}

	utils.ResponseSuccess(w, "success", turfs)
}

// UpdateTurf handles PUT /api/owner/turfs/{id}
func (h *TurfHandler) UpdateTurf(w http.ResponseWriter, r *http.Request) {
	turfID := chi.URLParam(r, "id")
	if turfID == "" {
		utils.ResponseBadRequest(w, "Turf ID is required", nil)
		return
	}

	var req request.TurfUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	turf, err := h.service.UpdateTurf(r.Context(), turfID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update turf")
		return
	}

	utils.ResponseSuccess(w, "success", turf)
}

// DeleteTurf handles DELETE /api/owner/turfs/{id}
func (h *TurfHandler) DeleteTurf(w http.ResponseWriter, r *http.Request) {
	turfID := chi.URLParam(r, "id")
	if turfID == "" {
		utils.ResponseBadRequest(w, "Turf ID is required", nil)
		return
	}

	if err := h.service.DeleteTurf(r.Context(), turfID); err != nil {
		handleServiceError(h.log, w, err, "delete turf")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// UploadPhoto handles POST /api/owner/turfs/{id}/photos (multipart)
func (h *TurfHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	turfID := chi.URLParam(r, "id")
	if turfID == "" {
		utils.ResponseBadRequest(w, "Turf ID is required", nil)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		utils.ResponseBadRequest(w, "Photo file is required", nil)
		return
	}
	defer file.Close()

	turf, err := h.service.UploadPhoto(r.Context(), turfID, file)
	if err != nil {
		handleServiceError(h.log, w, err, "upload turf photo")
		return
	}

	utils.ResponseCreated(w, "success", turf)
}

// DeletePhoto handles DELETE /api/owner/turfs/{id}/photos
func (h *TurfHandler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	turfID := chi.URLParam(r, "id")
	if turfID == "" {
		utils.ResponseBadRequest(w, "Turf ID is required", nil)
		return
	}

	var req request.DeleteTurfPhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	turf, err := h.service.DeletePhoto(r.Context(), turfID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "delete turf photo")
		return
	}

	utils.ResponseSuccess(w, "success", turf)
}
