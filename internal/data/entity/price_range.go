package entity

import (
	"github.com/google/uuid"
)

// PriceRange is a closed day-of-week interval [StartDay, EndDay] with an
// hourly price. Days use 0=Sunday .. 6=Saturday and the interval is walked
// forward modulo 7, so StartDay=6, EndDay=0 covers Saturday and Sunday.
type PriceRange struct {
	BaseSimple
	SportID      uuid.UUID `db:"sport_id"`
	StartDay     int       `db:"start_day"`
	EndDay       int       `db:"end_day"`
	PricePerHour float64   `db:"price_per_hour"`
	Position     int       `db:"position"`
}
