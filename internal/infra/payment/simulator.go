// Package payment holds the simulated payment gateway. It reproduces a real
// processor's shape (latency, declines, transport failures, idempotent
// retries) without moving money.
package payment

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"elegance/config"
	"elegance/internal/domain/service"
	"elegance/internal/errors"

	"github.com/google/uuid"
)

const referenceLength = 13

// simulator implements service.PaymentGateway with a configurable fixed
// outcome. Results are cached by idempotency key so a replayed charge returns
// the original decision instead of charging twice.
type simulator struct {
	delay   time.Duration
	outcome string
	logger  *slog.Logger

	mu      sync.Mutex
	charged map[string]*service.ChargeResult
}

// NewSimulator is the constructor for the simulated gateway.
func NewSimulator(cfg *config.Config, logger *slog.Logger) service.PaymentGateway {
	return &simulator{
		delay:   cfg.Payment.Delay,
		outcome: cfg.Payment.Outcome,
		logger:  logger,
		charged: make(map[string]*service.ChargeResult),
	}
}

// Charge simulates one gateway round-trip. The configured delay stands in for
// network latency and honors context cancellation.
func (s *simulator) Charge(ctx context.Context, req service.ChargeRequest) (*service.ChargeResult, error) {
	if req.IdempotencyKey != "" {
		s.mu.Lock()
		cached, ok := s.charged[req.IdempotencyKey]
		s.mu.Unlock()
		if ok {
			s.logger.Info("Replayed charge served from idempotency cache",
				slog.String("idempotencyKey", req.IdempotencyKey))

			return cached, nil
		}
	}

	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "charge aborted")
	}

	result, err := s.decide()
	if err != nil {
		return nil, err
	}

	s.logger.Info("Charge processed",
		slog.String("outcome", string(result.Outcome)),
		slog.String("reference", result.Reference),
		slog.Float64("amount", req.Amount),
		slog.String("currency", req.Currency))

	if req.IdempotencyKey != "" {
		s.mu.Lock()
		s.charged[req.IdempotencyKey] = result
		s.mu.Unlock()
	}

	return result, nil
}

func (s *simulator) decide() (*service.ChargeResult, error) {
	switch s.outcome {
	case "declined":
		return &service.ChargeResult{Outcome: service.OutcomeDeclined}, nil
	case "unavailable":
		return nil, errors.New("payment gateway unreachable")
	default:
		return &service.ChargeResult{
			Outcome:   service.OutcomeApproved,
			Reference: newPaymentReference(),
		}, nil
	}
}

// newPaymentReference mints gateway references like "pay_a1b2c3d4e5f6a".
func newPaymentReference() string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")

	return "pay_" + token[:referenceLength]
}
