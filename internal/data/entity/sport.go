package entity

import (
	"github.com/google/uuid"
)

type Sport struct {
	Base
	TurfID      uuid.UUID `db:"turf_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
}
