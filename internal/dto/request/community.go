package request

type MessageRequest struct {
	UserID string `json:"user_id" validate:"required,uuid4"`
	Body   string `json:"body" validate:"required,max=2000"`
}

type PollRequest struct {
	UserID        string `json:"user_id" validate:"required,uuid4"`
	TurfID        string `json:"turf_id" validate:"required,uuid4"`
	SportName     string `json:"sport_name" validate:"required,max=100"`
	SlotDate      string `json:"slot_date" validate:"required,datetime=2006-01-02"`
	PlayersNeeded int    `json:"players_needed" validate:"required,min=1,max=50"`
}
