package response

import (
	"time"

	"turf-booking/internal/data/entity"
)

type MessageResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type PollResponse struct {
	ID            string            `json:"id"`
	UserID        string            `json:"user_id"`
	TurfID        string            `json:"turf_id"`
	TurfName      string            `json:"turf_name,omitempty"`
	SportName     string            `json:"sport_name"`
	SlotDate      string            `json:"slot_date"`
	PlayersNeeded int               `json:"players_needed"`
	Status        entity.PollStatus `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
}

// Helper converters
func MessageToResponse(msg *entity.Message) MessageResponse {
	return MessageResponse{
		ID:        msg.ID.String(),
		UserID:    msg.UserID.String(),
		Body:      msg.Body,
		CreatedAt: msg.CreatedAt,
	}
}

func PollToResponse(poll *entity.Poll) PollResponse {
	return PollResponse{
		ID:            poll.ID.String(),
		UserID:        poll.UserID.String(),
		TurfID:        poll.TurfID.String(),
		SportName:     poll.SportName,
		SlotDate:      poll.SlotDate.Format("2006-01-02"),
		PlayersNeeded: poll.PlayersNeeded,
		Status:        poll.Status,
		CreatedAt:     poll.CreatedAt,
	}
}
