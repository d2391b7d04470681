package token

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

//go:generate mockgen -source=middleware.go -destination=mocks/mock.go -package=mocktoken
type TokenManager interface {
	ParseToken(tokenStr string) (string, error)
}

// NewMiddleware guards the per-session routes: the bearer token must be
// valid and its subject must match the {id} route parameter.
func NewMiddleware(logger *zap.Logger, tokenManager TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || headerParts[0] != "Bearer" || headerParts[1] == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			sessionID, err := tokenManager.ParseToken(headerParts[1])
			if err != nil {
				logger.Warn("error when parsing session token", zap.Error(err))
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if sessionID != chi.URLParam(r, "id") {
				w.WriteHeader(http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
