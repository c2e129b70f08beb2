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

type CommunityHandler struct {
	service usecase.CommunityService
	log     *zap.Logger
}

func NewCommunityHandler(service usecase.CommunityService, log *zap.Logger) *CommunityHandler {
	return &CommunityHandler{
		service: service,
		log:     log.With(zap.String("handler", "community")),
	}
}

// PostMessage handles POST /api/community/messages
func (h *CommunityHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	var req request.MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	message, err := h.service.PostMessage(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "post message")
		return
	}

	utils.ResponseCreated(w, "success", message)
}

// GetMessages handles GET /api/community/messages
func (h *CommunityHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 20),
	}

	messages, err := h.service.GetMessages(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "get messages")
		return
	}

	utils.ResponseSuccess(w, "success", messages)
}

// CreatePoll handles POST /api/community/polls
func (h *CommunityHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req request.PollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	poll, err := h.service.CreatePoll(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create poll")
		return
	}

	utils.ResponseCreated(w, "success", poll)
}

// GetOpenPolls handles GET /api/community/polls
func (h *CommunityHandler) GetOpenPolls(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 20),
	}

	polls, err := h.service.GetOpenPolls(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "get open polls")
		return
	}

	utils.ResponseSuccess(w, "success", polls)
}

// ClosePoll handles PUT /api/community/polls/{id}/close
func (h *CommunityHandler) ClosePoll(w http.ResponseWriter, r *http.Request) {
	pollID := chi.URLParam(r, "id")
	if pollID == "" {
		utils.ResponseBadRequest(w, "Poll ID is required", nil)
		return
	}

	poll, err := h.service.ClosePoll(r.Context(), pollID)
	if err != nil {
		handleServiceError(h.log, w, err, "close poll")
		return
	}

	utils.ResponseSuccess(w, "success", poll)
}
