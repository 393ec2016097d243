package usecase

import (
	"context"

	"elegance/internal/domain/entity"
)

// CheckoutInput is the customer form submitted with a checkout attempt. The
// idempotency key is optional; the flow mints one per attempt when absent.
type CheckoutInput struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	City           string `json:"city"`
	Zip            string `json:"zip"`
	Phone          string `json:"phone"`
	IdempotencyKey string `json:"idempotencyKey,omitempty"`
}

// CheckoutConfirmation is the success payload of a completed checkout.
type CheckoutConfirmation struct {
	Order      *entity.Order `json:"order"`
	PaymentRef string        `json:"paymentRef"`
}

// CheckoutUsecase defines the interface for the checkout flow
type CheckoutUsecase interface {
	// Checkout validates the form, charges the gateway and records the
	// order. On approval the cart is cleared before the confirmation is
	// returned.
	Checkout(ctx context.Context, input CheckoutInput) (*CheckoutConfirmation, error)
}
