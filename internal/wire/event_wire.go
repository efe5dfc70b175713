package wire

import (
	"campus-events/internal/adaptor"
	"campus-events/pkg/middleware"
	"campus-events/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireEvent(
	r chi.Router,
	eventHandler *adaptor.EventHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/events", eventHandler.ListEvents)
	r.Get("/api/events/upcoming", eventHandler.ListUpcoming)
	r.Get("/api/events/past", eventHandler.ListPast)
	r.Get("/api/events/category/{category}", eventHandler.ListByCategory)

	// ==================== CLUB ROUTES (require auth + club role) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))
		r.Use(middleware.RequireClub(log))

		// GET /api/events/my-events - registered before /{id} so chi
		// matches the static segment first
		r.Get("/api/events/my-events", eventHandler.ListMyEvents)

		r.Post("/api/events", eventHandler.CreateEvent)
		r.Put("/api/events/{id}", eventHandler.UpdateEvent)
		r.Delete("/api/events/{id}", eventHandler.DeleteEvent)
	})

	// Single event by ID - after specific routes
	r.Get("/api/events/{id}", eventHandler.GetEvent)
}
