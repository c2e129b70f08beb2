package wire

import (
	"turf-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCommunity(r chi.Router, communityHandler *adaptor.CommunityHandler) {
	r.Route("/api/community", func(r chi.Router) {
		r.Post("/messages", communityHandler.PostMessage)
		r.Get("/messages", communityHandler.GetMessages)

		r.Post("/polls", communityHandler.CreatePoll)
		r.Get("/polls", communityHandler.GetOpenPolls)
		r.Put("/polls/{id}/close", communityHandler.ClosePoll)
	})
}
