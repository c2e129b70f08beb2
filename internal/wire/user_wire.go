package wire

import (
	"turf-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler) {
	r.Post("/api/users", userHandler.CreateUser)
	r.Get("/api/users/{id}", userHandler.GetUser)
}
