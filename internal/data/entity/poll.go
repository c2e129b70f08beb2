package entity

import (
	"time"

	"github.com/google/uuid"
)

type PollStatus string

const (
	PollStatusOpen   PollStatus = "open"
	PollStatusClosed PollStatus = "closed"
)

// Poll is a players-needed request posted on the community board.
type Poll struct {
	Base
	UserID        uuid.UUID  `db:"user_id"`
	TurfID        uuid.UUID  `db:"turf_id"`
	SportName     string     `db:"sport_name"`
	SlotDate      time.Time  `db:"slot_date"`
	PlayersNeeded int        `db:"players_needed"`
	Status        PollStatus `db:"status"`
}
