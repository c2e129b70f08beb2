package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	BaseSimple
	UserID  uuid.UUID `db:"user_id"`
	TurfID  uuid.UUID `db:"turf_id"`
	Rating  int       `db:"rating"`
	Comment string    `db:"comment"`
}
