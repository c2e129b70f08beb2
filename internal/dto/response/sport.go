package response

import (
	"time"

	"turf-booking/internal/data/entity"
)

type PriceRangeResponse struct {
	ID           string  `json:"id"`
	StartDay     int     `json:"start_day"`
	EndDay       int     `json:"end_day"`
	PricePerHour float64 `json:"price_per_hour"`
}

type ResolvedPriceResponse struct {
	SportID      string  `json:"sport_id"`
	Date         string  `json:"date"`
	Weekday      int     `json:"weekday"`
	PricePerHour float64 `json:"price_per_hour"`
}

type SportResponse struct {
	ID          string               `json:"id"`
	TurfID      string               `json:"turf_id"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	PriceRanges []PriceRangeResponse `json:"price_ranges"`
	CreatedAt   time.Time            `json:"created_at"`
}

// Helper converters
func PriceRangeToResponse(pr *entity.PriceRange) PriceRangeResponse {
	return PriceRangeResponse{
		ID:           pr.ID.String(),
		StartDay:     pr.StartDay,
		EndDay:       pr.EndDay,
		PricePerHour: pr.PricePerHour,
	}
}

func SportToResponse(sport *entity.Sport, ranges []*entity.PriceRange) SportResponse {
	rangeResp := make([]PriceRangeResponse, 0, len(ranges))
	for _, pr := range ranges {
		rangeResp = append(rangeResp, PriceRangeToResponse(pr))
	}

	return SportResponse{
		ID:          sport.ID.String(),
		TurfID:      sport.TurfID.String(),
		Name:        sport.Name,
		Description: sport.Description,
		PriceRanges: rangeResp,
		CreatedAt:   sport.CreatedAt,
	}
}
