// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"elegance/internal/domain/entity"
)

// CartRepository persists the single cart snapshot owned by this storefront
// session. Every mutating operation in the application layer saves the whole
// snapshot synchronously, mirroring the original local-storage contract.
type CartRepository interface {
	// Load returns the persisted cart. An absent or unreadable snapshot
	// yields an empty cart, never an error: corruption is recovered silently.
	Load(ctx context.Context) (*entity.Cart, error)

	// Save serializes the full cart snapshot.
	Save(ctx context.Context, cart *entity.Cart) error

	// Clear resets the persisted snapshot to an empty cart.
	Clear(ctx context.Context) error
}
