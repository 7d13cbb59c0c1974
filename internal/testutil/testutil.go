package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"bookjourney/internal/auth"
	"bookjourney/internal/entity"
)

const TestSecret = "test-secret"

// TestUser is a fixture for handler tests.
var TestUser = entity.User{
	ID:           "3f1f3a4e-6f42-4b21-9c67-0f1f9a1f0001",
	Username:     "testuser",
	PasswordHash: "hashedpassword",
	CreatedAt:    time.Now(),
}

// TestBook is a fixture for handler tests.
var TestBook = entity.Book{
	ID:        "7a2b9c1d-1111-4f00-8a3c-0f1f9a1f0002",
	OwnerID:   TestUser.ID,
	Title:     "Dune",
	Author:    "Frank Herbert",
	CoverURL:  "https://example.com/dune.jpg",
	Status:    entity.StatusRead,
	Rating:    5,
	Comment:   "A classic.",
	CreatedAt: time.Now(),
	UpdatedAt: time.Now(),
}

// GenerateTestToken issues a token valid for one hour.
func GenerateTestToken(secret, userID, username string) string {
	tm := auth.NewTokenManagerWithClock(secret, time.Hour, time.Now)
	token, _ := tm.Issue(userID, username)
	return token
}

// GenerateExpiredToken issues a token that expired an hour ago.
func GenerateExpiredToken(secret, userID, username string) string {
	issued := time.Now().Add(-2 * time.Hour)
	tm := auth.NewTokenManagerWithClock(secret, time.Hour, func() time.Time { return issued })
	token, _ := tm.Issue(userID, username)
	return token
}

// NewRequest creates a JSON request for handler tests.
func NewRequest(method, path string, body interface{}) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}
	bodyBytes, _ := json.Marshal(body)
	r := httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// NewRequestWithAuth creates a JSON request carrying a bearer token.
func NewRequestWithAuth(method, path string, body interface{}, token string) *http.Request {
	r := NewRequest(method, path, body)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r
}

// DecodeBody decodes a recorded JSON response body into a generic map.
func DecodeBody(w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return body
}
