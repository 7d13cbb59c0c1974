package httpx

import (
	"net/http"
	"strings"

	"bookjourney/internal/auth"
)

// AuthMiddleware is the sole authorization boundary for protected routes.
// A missing credential is 401; a credential that fails verification
// (bad signature, tampered payload, expired) is 403. On success the
// decoded identity is attached to the request context.
func AuthMiddleware(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				Error(w, http.StatusUnauthorized, "Access denied")
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := tokens.Parse(token)
			if err != nil {
				Error(w, http.StatusForbidden, "Invalid token")
				return
			}

			ctx := ContextWithUser(r.Context(), claims.Sub, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
