package request

type PriceRangeRequest struct {
	StartDay     int     `json:"start_day" validate:"weekday"`
	EndDay       int     `json:"end_day" validate:"weekday"`
	PricePerHour float64 `json:"price_per_hour" validate:"required"`
}

type SportRequest struct {
	Name        string              `json:"name" validate:"required,min=1,max=100"`
	Description string              `json:"description" validate:"max=2000"`
	PriceRanges []PriceRangeRequest `json:"price_ranges" validate:"omitempty,dive"`
}

type SportUpdateRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

// ReplacePriceRangesRequest swaps a sport's whole pricing rule set. An
// empty list is rejected; an owner who wants pure base-price billing just
// never defines ranges in the first place.
type ReplacePriceRangesRequest struct {
	PriceRanges []PriceRangeRequest `json:"price_ranges" validate:"dive"`
}
