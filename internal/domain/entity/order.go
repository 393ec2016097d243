package entity

import "time"

// OrderStatus represents the lifecycle state of a placed order.
type OrderStatus string

const (
	// OrderStatusProcessing is the initial state of every placed order.
	OrderStatusProcessing OrderStatus = "processing"
	// OrderStatusCompleted marks an order as fulfilled.
	OrderStatusCompleted OrderStatus = "completed"
	// OrderStatusCancelled marks an order as cancelled.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether an order may move from this status to next.
// Only processing orders may still change; completed and cancelled are final.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !next.IsValid() || s == next {
		return false
	}

	return s == OrderStatusProcessing
}

// OrderLine is a snapshot of one purchased line item. It deliberately copies
// name and price so later catalog edits cannot rewrite order history.
type OrderLine struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// CustomerDetails is the shipping snapshot captured at checkout.
type CustomerDetails struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
	Phone   string `json:"phone"`
}

// Order is one completed checkout.
type Order struct {
	ID         string          `json:"id"`
	PaymentRef string          `json:"paymentRef"` // Synthetic gateway reference, "pay_…".
	UserID     string          `json:"userId"`     // Session record id of the buyer, empty for guests.
	Customer   CustomerDetails `json:"customer"`
	Lines      []OrderLine     `json:"lines"`
	Total      float64         `json:"total"`
	Status     OrderStatus     `json:"status"`
	PlacedAt   time.Time       `json:"placedAt"`
}
