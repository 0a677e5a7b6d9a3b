// Package jwt implements generation and parsing of session tokens with custom claims.
package jwt

import (
	"time"
)

// Maker describes the interface for issuing and parsing session tokens.
type Maker interface {
	// GenerateToken issues a token carrying the user's email and role.
	GenerateToken(email, role string) (string, error)
	// ParseToken validates a token and returns its claims.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl implements Maker with a secret key and a token lifetime.
type MakerImpl struct {
	secretKey string
	tokenTTL  time.Duration
}

// NewJWTMaker creates a MakerImpl from a secret key and a TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
