package repository

import (
	"context"

	"elegance/internal/domain/entity"
	"elegance/internal/errors"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository persists the order book. The book is seeded once with the
// demo fixtures and then appended to by every successful checkout.
type OrderRepository interface {
	// List returns all orders, newest first.
	List(ctx context.Context) ([]*entity.Order, error)

	// ListByUser returns the orders placed by the given session record id,
	// newest first.
	ListByUser(ctx context.Context, userID string) ([]*entity.Order, error)

	// FindByID returns a single order, or ErrOrderNotFound.
	FindByID(ctx context.Context, id string) (*entity.Order, error)

	// Append adds a newly placed order to the book.
	Append(ctx context.Context, order *entity.Order) error

	// UpdateStatus sets the status of an existing order.
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error
}
