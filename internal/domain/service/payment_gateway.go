package service

import "context"

// ChargeOutcome is the result class of a payment attempt. Modeling all three
// explicitly keeps the flow honest about transport failures even though the
// bundled simulator approves by default.
type ChargeOutcome string

const (
	// OutcomeApproved means the charge went through.
	OutcomeApproved ChargeOutcome = "approved"
	// OutcomeDeclined means the gateway refused the charge.
	OutcomeDeclined ChargeOutcome = "declined"
	// OutcomeTransportError means the attempt never reached a decision.
	OutcomeTransportError ChargeOutcome = "transport_error"
)

// ChargeRequest describes one payment attempt. The idempotency key makes
// retries safe: replaying a key must return the original result without
// charging again.
type ChargeRequest struct {
	IdempotencyKey string
	Amount         float64
	Currency       string
	CustomerName   string
	CustomerEmail  string
}

// ChargeResult is the gateway's decision for one attempt.
type ChargeResult struct {
	Outcome   ChargeOutcome
	Reference string // Gateway payment reference, e.g. "pay_k2j4h5…". Empty unless approved.
}

// PaymentGateway is the external payment collaborator. The shipped
// implementation simulates the round-trip with a fixed delay; a real
// processor replaces the body, not this interface.
type PaymentGateway interface {
	// Charge performs one payment attempt. A transport-level failure is
	// reported as an error; business refusals come back as OutcomeDeclined.
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}
