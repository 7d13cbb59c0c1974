package auth

import (
	"strings"
	"testing"
	"time"
)

func TestIssueAndParse_RoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret")

	token, err := tm.Issue("user-1", "alice")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if token == "" {
		t.Fatal("Expected token to be generated")
	}

	claims, err := tm.Parse(token)
	if err != nil {
		t.Fatalf("Expected no error parsing token, got %v", err)
	}
	if claims.Sub != "user-1" {
		t.Errorf("Expected user ID user-1, got %s", claims.Sub)
	}
	if claims.Username != "alice" {
		t.Errorf("Expected username alice, got %s", claims.Username)
	}
}

func TestParse_ValidBeforeExpiry(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := issued
	tm := NewTokenManagerWithClock("test-secret", 24*time.Hour, func() time.Time { return now })

	token, err := tm.Issue("user-1", "alice")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Valid right up to the end of the window.
	now = issued.Add(24*time.Hour - time.Minute)
	if _, err := tm.Parse(token); err != nil {
		t.Errorf("Expected token to be valid before expiry, got %v", err)
	}
}

func TestParse_ExpiredToken(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := issued
	tm := NewTokenManagerWithClock("test-secret", 24*time.Hour, func() time.Time { return now })

	token, err := tm.Issue("user-1", "alice")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	now = issued.Add(25 * time.Hour)
	if _, err := tm.Parse(token); err == nil {
		t.Error("Expected error for expired token")
	}
}

func TestParse_TamperedToken(t *testing.T) {
	tm := NewTokenManager("test-secret")

	token, err := tm.Issue("user-1", "alice")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Flip one character in each segment of the token.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("Expected 3 token segments, got %d", len(parts))
	}
	for i := range parts {
		tampered := make([]string, 3)
		copy(tampered, parts)
		segment := []byte(tampered[i])
		if segment[0] == 'A' {
			segment[0] = 'B'
		} else {
			segment[0] = 'A'
		}
		tampered[i] = string(segment)

		if _, err := tm.Parse(strings.Join(tampered, ".")); err == nil {
			t.Errorf("Expected error for token tampered in segment %d", i)
		}
	}
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := NewTokenManager("test-secret").Issue("user-1", "alice")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := NewTokenManager("other-secret").Parse(token); err == nil {
		t.Error("Expected error for token signed with a different secret")
	}
}

func TestParse_MalformedToken(t *testing.T) {
	tm := NewTokenManager("test-secret")

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := tm.Parse(token); err == nil {
			t.Errorf("Expected error for malformed token %q", token)
		}
	}
}
