package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// TokenManager handles issuing and validating JWT bearer tokens. Tokens are
// self-contained and stateless; there is no revocation list, expiry is the
// only end of life.
type TokenManager struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

// NewTokenManager builds a manager for the configured HMAC algorithm.
// Unknown algorithm names fall back to HS256; a non-positive ttl falls back
// to 8 hours.
func NewTokenManager(secret, algorithm string, ttlHours int) *TokenManager {
	if ttlHours <= 0 {
		ttlHours = 8
	}
	method := jwt.SigningMethodHS256
	switch algorithm {
	case "HS384":
		method = jwt.SigningMethodHS384
	case "HS512":
		method = jwt.SigningMethodHS512
	}
	return &TokenManager{
		secret: []byte(secret),
		method: method,
		ttl:    time.Duration(ttlHours) * time.Hour,
	}
}

// Claims is the token payload: subject username plus registered expiry.
type Claims struct {
	jwt.RegisteredClaims
}

// TTL exposes the configured token lifetime.
func (tm *TokenManager) TTL() time.Duration {
	return tm.ttl
}

// GenerateToken signs a token for the subject, valid for the configured ttl.
func (tm *TokenManager) GenerateToken(subject string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(tm.method, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseToken validates signature and expiry and returns the claims. A token
// evaluated exactly at its expiry instant is rejected.
func (tm *TokenManager) ParseToken(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != tm.method {
			return nil, fmt.Errorf("unexpected signing method %q", token.Header["alg"])
		}
		return tm.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	if claims.Subject == "" {
		return nil, errors.New("token subject missing")
	}
	return claims, nil
}
