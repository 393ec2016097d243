// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by an access token.
type Claims struct {
	UserID string
	Roles  []string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating access
// tokens. This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate creates a signed access token for a session record.
	Generate(userID string, roles []string) (string, error)

	// Validate checks a token string and returns its claims.
	Validate(tokenString string) (*Claims, error)
}
