package wire

import (
	"turf-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	r.Post("/api/turfs/{turfId}/reviews", reviewHandler.CreateReview)
	r.Get("/api/turfs/{turfId}/reviews", reviewHandler.GetTurfReviews)
	r.Get("/api/turfs/{turfId}/rating", reviewHandler.GetTurfRating)
	r.Delete("/api/reviews/{id}", reviewHandler.DeleteReview)
}
