package http

import (
	"net/http"
	"strings"

	"fd-calculator/logger"
	"fd-calculator/security"
)

// AuthMiddleware requires a valid HS256 bearer token and stores its subject
// in the request context. A nil validator disables authentication.
func AuthMiddleware(validator *security.TokenValidator, next http.Handler) http.Handler {
	if validator == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			logger.L.Debug("AuthMiddleware: Authorization header missing", "path", r.URL.Path)
			writeError(w, http.StatusUnauthorized, "Authorization header required")
			return
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		tokenString = strings.TrimSpace(tokenString)
		if !found || tokenString == "" {
			logger.L.Debug("AuthMiddleware: Malformed authorization header", "path", r.URL.Path)
			writeError(w, http.StatusUnauthorized, "Malformed token")
			return
		}

		subject, err := validator.Validate(tokenString)
		if err != nil {
			logger.L.Warn("AuthMiddleware: Token validation failed", "path", r.URL.Path, "error", err)
			writeError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(security.WithSubject(r.Context(), subject)))
	})
}
