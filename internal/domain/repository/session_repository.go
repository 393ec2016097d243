package repository

import (
	"context"

	"elegance/internal/domain/entity"
)

// SessionRepository persists the optional current-user record. Presence of a
// record is the sole definition of "authenticated".
type SessionRepository interface {
	// Load returns the persisted record, or nil when signed out. An
	// unreadable record is treated as signed out, never as an error.
	Load(ctx context.Context) (*entity.User, error)

	// Save persists the record.
	Save(ctx context.Context, user *entity.User) error

	// Clear removes the record and its persisted copy.
	Clear(ctx context.Context) error
}
