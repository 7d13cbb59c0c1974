package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is how long an issued token stays valid. There is no
// revocation: a token remains usable until it expires.
const DefaultTokenTTL = 24 * time.Hour

type Claims struct {
	Sub      string `json:"sub"` // user id
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256-signed session tokens. The clock
// is injectable so expiry can be tested deterministically.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret string) *TokenManager {
	return NewTokenManagerWithClock(secret, DefaultTokenTTL, time.Now)
}

func NewTokenManagerWithClock(secret string, ttl time.Duration, now func() time.Time) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
	}
}

func (m *TokenManager) Issue(userID, username string) (string, error) {
	issuedAt := m.now()
	c := Claims{
		Sub:      userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(m.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return t.SignedString(m.secret)
}

// Parse verifies the signature and expiry of a token and returns its
// claims. Malformed, tampered and expired tokens all fail the same way.
func (m *TokenManager) Parse(tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(m.now))
	if err != nil {
		return nil, err
	}
	if claims, ok := t.Claims.(*Claims); ok && t.Valid {
		return claims, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}
