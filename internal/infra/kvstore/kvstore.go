// Package kvstore provides the key-value snapshot store backing all mutable
// storefront state. Values are opaque JSON blobs; the repositories above it
// decide the layout (keys "cart", "user", "orders"). A multi-tenant
// deployment would prefix keys per visitor session; this service keeps the
// single-session layout of the storefront it models.
package kvstore

import (
	"context"

	"elegance/internal/errors"
)

// ErrKeyNotFound is returned when a key has no stored value.
var ErrKeyNotFound = errors.New("key not found")

// Store is a minimal key-value interface with interchangeable drivers.
type Store interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error

	// Close releases driver resources.
	Close() error
}
