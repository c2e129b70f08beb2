package usecase

import (
	"context"
	"fmt"
	"time"

	"turf-booking/internal/data/entity"
	"turf-booking/internal/data/repository"
	"turf-booking/internal/dto/request"
	"turf-booking/internal/dto/response"
	"turf-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CommunityService interface {
	// Chat wall
	PostMessage(ctx context.Context, req *request.MessageRequest) (*response.MessageResponse, error)
	GetMessages(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MessageResponse], error)

	// Player-finding polls
	CreatePoll(ctx context.Context, req *request.PollRequest) (*response.PollResponse, error)
	GetOpenPolls(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PollResponse], error)
	ClosePoll(ctx context.Context, pollID string) (*response.PollResponse, error)
}

type communityService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCommunityService(repo *repository.Repository, log *zap.Logger) CommunityService {
	return &communityService{
		repo: repo,
		log:  log.With(zap.String("service", "community")),
	}
}

func (s *communityService) PostMessage(ctx context.Context, req *request.MessageRequest) (*response.MessageResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Post message validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", req.UserID, err)
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil || user == nil {
		return nil, fmt.Errorf("user %s: %w", req.UserID, ErrNotFound)
	}

	message := &entity.Message{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID: userID,
		Body:   req.Body,
	}

	if err := s.repo.Message.Create(ctx, message); err != nil {
		s.log.Error("Failed to post message", zap.Error(err), zap.String("user_id", req.UserID))
		return nil, fmt.Errorf("post message: %w", err)
	}

	resp := response.MessageToResponse(message)
	resp.UserName = user.Name
	return &resp, nil
}

func (s *communityService) GetMessages(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MessageResponse], error) {
	messages, err := s.repo.Message.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get messages", zap.Error(err))
		return nil, fmt.Errorf("get messages: %w", err)
	}

	total, err := s.repo.Message.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count messages: %w", err)
	}

	items := make([]response.MessageResponse, len(messages))
	for i, msg := range messages {
		items[i] = response.MessageToResponse(msg)
		if user, err := s.repo.User.FindByID(ctx, msg.UserID); err != nil {
			s.log.Warn("Failed to enrich message with user name", zap.Error(err), zap.String("user_id", msg.UserID.String()))
		} else if user != nil {
			items[i].UserName = user.Name
		}
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *communityService) CreatePoll(ctx context.Context, req *request.PollRequest) (*response.PollResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create poll validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", req.UserID, err)
	}
	turfID, err := uuid.Parse(req.TurfID)
	if err != nil {
		return nil, fmt.Errorf("invalid turf ID format %s: %w", req.TurfID, err)
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil || user == nil {
		return nil, fmt.Errorf("user %s: %w", req.UserID, ErrNotFound)
	}

	turf, err := s.repo.Turf.FindByID(ctx, turfID)
	if err != nil {
		return nil, fmt.Errorf("get turf: %w", err)
	}
	if turf == nil {
		return nil, fmt.Errorf("turf %s: %w", req.TurfID, ErrNotFound)
	}

	slotDate, err := utils.ParseDate(req.SlotDate)
	if err != nil {
		return nil, fmt.Errorf("invalid slot date %s: %w", req.SlotDate, err)
	}

	poll := &entity.Poll{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:        userID,
		TurfID:        turfID,
		SportName:     req.SportName,
		SlotDate:      slotDate,
		PlayersNeeded: req.PlayersNeeded,
		Status:        entity.PollStatusOpen,
	}

	if err := s.repo.Poll.Create(ctx, poll); err != nil {
		s.log.Error("Failed to create poll", zap.Error(err), zap.String("user_id", req.UserID))
		return nil, fmt.Errorf("create poll: %w", err)
	}

	s.log.Info("Poll created",
		zap.String("poll_id", poll.ID.String()),
		zap.String("turf_id", req.TurfID),
		zap.Int("players_needed", req.PlayersNeeded),
	)

	resp := response.PollToResponse(poll)
	resp.TurfName = turf.Name
	return &resp, nil
}

func (s *communityService) GetOpenPolls(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PollResponse], error) {
	polls, err := s.repo.Poll.FindOpen(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get open polls", zap.Error(err))
		return nil, fmt.Errorf("get open polls: %w", err)
	}

	total, err := s.repo.Poll.CountOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("count open polls: %w", err)
	}

	items := make([]response.PollResponse, len(polls))
	for i, poll := range polls {
		items[i] = response.PollToResponse(poll)
		if turf, err := s.repo.Turf.FindByID(ctx, poll.TurfID); err != nil {
			s.log.Warn("Failed to enrich poll with turf name", zap.Error(err), zap.String("turf_id", poll.TurfID.String()))
		} else if turf != nil {
			items[i].TurfName = turf.Name
		}
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *communityService) ClosePoll(ctx context.Context, pollID string) (*response.PollResponse, error) {
	id, err := uuid.Parse(pollID)
	if err != nil {
		return nil, fmt.Errorf("invalid poll ID format %s: %w", pollID, err)
	}

	poll, err := s.repo.Poll.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get poll: %w", err)
	}
	if poll == nil {
		return nil, fmt.Errorf("poll %s: %w", pollID, ErrNotFound)
	}

	if poll.Status != entity.PollStatusClosed {
		if err := s.repo.Poll.UpdateStatus(ctx, id, entity.PollStatusClosed); err != nil {
			return nil, fmt.Errorf("close poll: %w", err)
		}
		poll.Status = entity.PollStatusClosed
		s.log.Info("Poll closed", zap.String("poll_id", pollID))
	}

	resp := response.PollToResponse(poll)
	return &resp, nil
}
