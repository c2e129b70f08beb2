package wire

import (
	"net/http"

	"turf-booking/internal/adaptor"
	"turf-booking/internal/data/repository"
	"turf-booking/internal/usecase"
	"turf-booking/pkg/middleware"
	"turf-booking/pkg/uploader"
	"turf-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and the router.
func Wiring(repo *repository.Repository, config *utils.Config, upload uploader.Uploader, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, upload, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireUser(r, handler.User)
	wireTurf(r, handler.Turf, handler.Sport, handler.Slot)
	wireBooking(r, handler.Booking)
	wireReview(r, handler.Review)
	wireCommunity(r, handler.Community)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
