package wire

import (
	"turf-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTurf(r chi.Router, turfHandler *adaptor.TurfHandler, sportHandler *adaptor.SportHandler, slotHandler *adaptor.SlotHandler) {
	// ==================== PUBLIC CATALOG ====================
	r.Route("/api/turfs", func(r chi.Router) {
		r.Get("/", turfHandler.ListTurfs)
		r.Get("/{id}", turfHandler.GetTurf)
		r.Get("/{turfId}/sports", sportHandler.GetTurfSports)
		r.Get("/{turfId}/slots", slotHandler.GetTurfSlots)
		r.Get("/{turfId}/availability", slotHandler.GetBookableSlots)
	})

	r.Get("/api/sports/{id}", sportHandler.GetSport)
	r.Get("/api/sports/{id}/price", sportHandler.GetPrice)
	r.Get("/api/sports/{id}/price-ranges", sportHandler.GetPriceRanges)

	// ==================== OWNER CONSOLE ====================
	r.Route("/api/owner", func(r chi.Router) {
		r.Post("/turfs", turfHandler.CreateTurf)
		r.Get("/{ownerId}/turfs", turfHandler.GetOwnerTurfs)
		r.Put("/turfs/{id}", turfHandler.UpdateTurf)
		r.Delete("/turfs/{id}", turfHandler.DeleteTurf)
		r.Post("/turfs/{id}/photos", turfHandler.UploadPhoto)
		r.Delete("/turfs/{id}/photos", turfHandler.DeletePhoto)

		r.Post("/turfs/{turfId}/sports", sportHandler.CreateSport)
		r.Put("/sports/{id}", sportHandler.UpdateSport)
		r.Delete("/sports/{id}", sportHandler.DeleteSport)
		r.Put("/sports/{id}/price-ranges", sportHandler.ReplacePriceRanges)

		r.Post("/turfs/{turfId}/slots", slotHandler.CreateSlot)
		r.Put("/slots/{id}/availability", slotHandler.SetAvailability)
		r.Delete("/slots/{id}", slotHandler.DeleteSlot)
	})
}
