package wire

import (
	"campus-events/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuditorium(r chi.Router, auditoriumHandler *adaptor.AuditoriumHandler) {
	// All auditorium routes are public reads
	r.Get("/api/auditoriums", auditoriumHandler.List)
	r.Get("/api/auditoriums/availability/{date}", auditoriumHandler.AvailabilityByDate)
	r.Get("/api/auditoriums/{name}/availability", auditoriumHandler.Availability)
}
