package entity

import (
	"github.com/google/uuid"
)

// Turf is a bookable sports facility. BasePricePerHour is the fallback
// rate charged when no sport-specific price range covers the weekday.
type Turf struct {
	Base
	OwnerID          uuid.UUID `db:"owner_id"`
	Name             string    `db:"name"`
	Address          string    `db:"address"`
	City             string    `db:"city"`
	Description      string    `db:"description"`
	BasePricePerHour float64   `db:"base_price_per_hour"`
	ImageURLs        []string  `db:"image_urls"`
}
