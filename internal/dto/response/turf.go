package response

import (
	"time"

	"turf-booking/internal/data/entity"
)

type TurfResponse struct {
	ID               string    `json:"id"`
	OwnerID          string    `json:"owner_id"`
	Name             string    `json:"name"`
	Address          string    `json:"address"`
	City             string    `json:"city"`
	Description      string    `json:"description,omitempty"`
	BasePricePerHour float64   `json:"base_price_per_hour"`
	ImageURLs        []string  `json:"image_urls"`
	CreatedAt        time.Time `json:"created_at"`
}

type TurfDetailResponse struct {
	TurfResponse
	AverageRating float64         `json:"average_rating"`
	ReviewCount   int             `json:"review_count"`
	Sports        []SportResponse `json:"sports,omitempty"`
	UpdatedAt     *time.Time      `json:"updated_at,omitempty"`
}

// Helper converters
func TurfToResponse(turf *entity.Turf) TurfResponse {
	images := turf.ImageURLs
	if images == nil {
		images = []string{}
	}

	return TurfResponse{
		ID:               turf.ID.String(),
		OwnerID:          turf.OwnerID.String(),
		Name:             turf.Name,
		Address:          turf.Address,
		City:             turf.City,
		Description:      turf.Description,
		BasePricePerHour: turf.BasePricePerHour,
		ImageURLs:        images,
		CreatedAt:        turf.CreatedAt,
	}
}

func TurfToDetailResponse(turf *entity.Turf, avgRating float64, reviewCount int, sports []SportResponse) TurfDetailResponse {
	return TurfDetailResponse{
		TurfResponse:  TurfToResponse(turf),
		AverageRating: avgRating,
		ReviewCount:   reviewCount,
		Sports:        sports,
		UpdatedAt:     &turf.UpdatedAt,
	}
}
