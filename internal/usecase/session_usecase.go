package usecase

import (
	"context"

	"elegance/internal/domain/entity"
)

// AuthResult carries the session record and its signed access token.
type AuthResult struct {
	User        *entity.User `json:"user"`
	AccessToken string       `json:"accessToken"`
}

// SessionUsecase defines the interface for the storefront session use cases.
// There is no credential authority: the built-in administrator pair resolves
// to the admin record, every other non-empty pair fabricates a customer.
type SessionUsecase interface {
	// Login resolves a credential pair to a session record
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// Signup fabricates a new customer record; it always succeeds
	Signup(ctx context.Context, name, email, password string) (*AuthResult, error)

	// Logout clears the session record
	Logout(ctx context.Context) error

	// Current returns the session record, or nil when signed out
	Current(ctx context.Context) (*entity.User, error)
}
