package middleware

import (
	"net/http"
	"strings"

	"campus-events/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Auth middleware validates the bearer JWT and injects the caller's
// identity (id, role, display name) into the request context. Identity is
// carried per-request; there is no server-side session state.
func Auth(config utils.JWTConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := utils.ParseToken(config, parts[1])
			if err != nil {
				logger.Warn("Invalid or expired token", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				logger.Warn("Token subject is not a valid user ID",
					zap.String("subject", claims.Subject))
				utils.ResponseUnauthorized(w, "Invalid token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), userID, claims.Role, claims.Name)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireClub - middleware cek role club (hanya club yang boleh manage event)
func RequireClub(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if role != "club" {
				logger.Warn("Non-club access attempt on club route",
					zap.String("role", role),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Only clubs can perform this action")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
