package wire

import (
	"campus-events/internal/adaptor"
	"campus-events/pkg/middleware"
	"campus-events/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/auth/signup", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))

		r.Get("/api/auth/me", authHandler.Me)
		r.Put("/api/auth/profile-picture", authHandler.UpdateProfilePicture)
	})
}
