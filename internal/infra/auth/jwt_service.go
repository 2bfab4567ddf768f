// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"blooddonor/config"
	"blooddonor/internal/domain/entity"
	"blooddonor/internal/domain/service"
)

// sessionTTL is the fixed lifetime of a session token. There is no refresh
// or revocation; an expired token simply forces a new login.
const sessionTTL = 8 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
// The signing secret is process-wide configuration; rotating it invalidates
// all outstanding tokens.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.JWT.Secret),
		ttl:    sessionTTL,
	}, nil
}

// Issue creates a signed session token embedding the subject id and role.
func (s *jwtService) Issue(subjectID int64, role entity.Role) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		SubjectID: subjectID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}

// Verify checks the validity of a token string and returns its claims.
// Signature, expiry and payload failures all surface as errors; the caller
// treats any of them as an invalid session.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &service.Claims{}, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*service.Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	if claims.SubjectID <= 0 || !claims.Role.IsValid() {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

// TTL returns the configured session token lifetime.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}
