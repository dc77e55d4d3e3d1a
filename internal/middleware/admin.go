package middleware

import (
	"log/slog"
	"net/http"

	"starseed-server/internal/auth"
	"starseed-server/internal/shared/errors"
	"starseed-server/internal/shared/response"
)

func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.With(
			"middleware", "admin",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
		)
		logger.Debug("Processing admin authorization")

		claims := GetUserFromContext(r)
		if claims == nil {
			response.Error(w, r, logger, errors.Unauthorized("authentication required"))
			return
		}

		if claims.Role != auth.RoleAdmin {
			logger.Warn("Non-admin token used on admin endpoint",
				"subject", claims.Subject,
				"role", claims.Role)
			response.Error(w, r, logger, errors.Forbidden("admin access required"))
			return
		}

		logger.Debug("Admin authorization successful", "subject", claims.Subject)

		next.ServeHTTP(w, r)
	})
}

// RequireAdmin authenticates the bearer token and then checks the admin role.
// With an empty secret admin endpoints are closed.
func RequireAdmin(secret string, next http.Handler) http.Handler {
	if secret == "" {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := slog.With("middleware", "admin", "path", r.URL.Path)
			response.Error(w, r, logger, errors.Forbidden("admin endpoints are disabled"))
		})
	}
	return JWTMiddleware(secret)(AdminMiddleware(next))
}
