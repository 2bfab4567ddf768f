package service

import (
	"time"

	"blooddonor/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by a session token.
type Claims struct {
	SubjectID int64       `json:"sid"`
	Role      entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session tokens.
// Tokens are stateless: nothing is persisted server-side, and logout is a
// client-side token discard.
type TokenService interface {
	// Issue creates a signed session token bound to one subject of one role.
	Issue(subjectID int64, role entity.Role) (string, error)

	// Verify checks the signature, expiry and payload of a token and returns
	// its claims. Any failure yields an error and never panics.
	Verify(token string) (*Claims, error)

	// TTL returns the configured session token lifetime.
	TTL() time.Duration
}
