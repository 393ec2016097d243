package usecase

import (
	"context"

	"elegance/internal/domain/entity"
)

// CartView is the cart snapshot returned to the delivery layer. Total and
// Count are recomputed from the current entries on every read.
type CartView struct {
	Items []entity.CartItem `json:"items"`
	Total float64           `json:"total"`
	Count int               `json:"count"`
}

// CartUsecase defines the interface for cart management use cases
type CartUsecase interface {
	// Get returns the current cart with derived totals
	Get(ctx context.Context) (*CartView, error)

	// AddItem adds quantity of a catalog item, merging with an existing
	// entry for the same id
	AddItem(ctx context.Context, itemID string, quantity int) (*CartView, error)

	// SetQuantity sets an entry's quantity exactly; zero or less removes it
	SetQuantity(ctx context.Context, itemID string, quantity int) (*CartView, error)

	// RemoveItem deletes an entry if present
	RemoveItem(ctx context.Context, itemID string) (*CartView, error)

	// Clear empties the cart
	Clear(ctx context.Context) error
}
