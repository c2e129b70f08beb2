package response

import (
	"time"

	"turf-booking/internal/data/entity"
)

type ReviewResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TurfID    string    `json:"turf_id"`
	UserName  string    `json:"user_name,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type TurfRatingResponse struct {
	TurfID        string  `json:"turf_id"`
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
}

// Helper converters
func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID.String(),
		UserID:    review.UserID.String(),
		TurfID:    review.TurfID.String(),
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}
