package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bookjourney/internal/auth"
)

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret")
	validToken, err := tokens.Issue("user-1", "alice")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	expiredIssuer := auth.NewTokenManagerWithClock("test-secret", time.Hour,
		func() time.Time { return time.Now().Add(-2 * time.Hour) })
	expiredToken, err := expiredIssuer.Issue("user-1", "alice")
	if err != nil {
		t.Fatalf("issue expired token: %v", err)
	}

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectNext     bool
	}{
		{"valid token", "Bearer " + validToken, http.StatusOK, true},
		{"no header", "", http.StatusUnauthorized, false},
		{"not a bearer header", "Basic abc123", http.StatusUnauthorized, false},
		{"garbage token", "Bearer garbage", http.StatusForbidden, false},
		{"expired token", "Bearer " + expiredToken, http.StatusForbidden, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				assert.Equal(t, "user-1", UserIDFrom(r))
				assert.Equal(t, "alice", UsernameFrom(r))
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(tokens)(next)

			r := httptest.NewRequest(http.MethodGet, "/api/books", nil)
			if tt.authHeader != "" {
				r.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectNext, nextCalled)
		})
	}
}
