package usecase

import (
	"context"

	"elegance/internal/domain/entity"
)

// OrderUsecase defines the interface for order history use cases. The
// requester is the authenticated session record: administrators see the whole
// book, customers only their own orders.
type OrderUsecase interface {
	// List returns the orders visible to the requester, newest first
	List(ctx context.Context, requester *entity.User) ([]*entity.Order, error)

	// Get returns one order visible to the requester
	Get(ctx context.Context, requester *entity.User, id string) (*entity.Order, error)

	// UpdateStatus moves an order to a new status (admin surface)
	UpdateStatus(ctx context.Context, id string, status string) (*entity.Order, error)

	// ReceiptQR renders the PNG receipt QR code for one order
	ReceiptQR(ctx context.Context, requester *entity.User, id string) ([]byte, error)
}
