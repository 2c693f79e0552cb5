// Package service defines interfaces for collaborators consumed by the core.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService validates the bearer tokens that carry the authenticated user
// identity. The core never authenticates; it only trusts the user id the
// delivery layer extracts from a valid token.
type TokenService interface {
	// GenerateAccessToken issues a signed access token for the given user.
	GenerateAccessToken(userID uuid.UUID, secret string, ttl time.Duration) (string, error)

	// ValidateToken parses and verifies a token string against the secret.
	ValidateToken(tokenString, secret string) (*jwt.Token, error)
}
