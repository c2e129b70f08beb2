package entity

import (
	"github.com/google/uuid"
)

// Message is a community board post. Delivery is plain request/response,
// there is no realtime fan-out.
type Message struct {
	BaseSimple
	UserID uuid.UUID `db:"user_id"`
	Body   string    `db:"body"`
}
