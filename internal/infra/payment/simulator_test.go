package payment

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"elegance/config"
	"elegance/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSimulator(outcome string) service.PaymentGateway {
	cfg := &config.Config{Payment: &config.PaymentConfig{
		Delay:    time.Millisecond,
		Outcome:  outcome,
		Currency: "USD",
	}}

	return NewSimulator(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSimulator_ApprovedMintsReference(t *testing.T) {
	gateway := newTestSimulator("approved")

	result, err := gateway.Charge(context.Background(), service.ChargeRequest{
		IdempotencyKey: "key-1",
		Amount:         15.75,
		Currency:       "USD",
	})
	require.NoError(t, err)
	assert.Equal(t, service.OutcomeApproved, result.Outcome)
	assert.True(t, strings.HasPrefix(result.Reference, "pay_"))
	assert.Len(t, result.Reference, len("pay_")+13)
}

func TestSimulator_Declined(t *testing.T) {
	gateway := newTestSimulator("declined")

	result, err := gateway.Charge(context.Background(), service.ChargeRequest{Amount: 5.50})
	require.NoError(t, err)
	assert.Equal(t, service.OutcomeDeclined, result.Outcome)
	assert.Empty(t, result.Reference)
}

func TestSimulator_Unavailable(t *testing.T) {
	gateway := newTestSimulator("unavailable")

	result, err := gateway.Charge(context.Background(), service.ChargeRequest{Amount: 5.50})
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestSimulator_IdempotencyReplayReturnsOriginalResult(t *testing.T) {
	gateway := newTestSimulator("approved")
	ctx := context.Background()
	req := service.ChargeRequest{IdempotencyKey: "key-replay", Amount: 12.25, Currency: "USD"}

	first, err := gateway.Charge(ctx, req)
	require.NoError(t, err)

	second, err := gateway.Charge(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, first.Reference, second.Reference)
}

func TestSimulator_DistinctKeysMintDistinctReferences(t *testing.T) {
	gateway := newTestSimulator("approved")
	ctx := context.Background()

	first, err := gateway.Charge(ctx, service.ChargeRequest{IdempotencyKey: "key-a", Amount: 1})
	require.NoError(t, err)
	second, err := gateway.Charge(ctx, service.ChargeRequest{IdempotencyKey: "key-b", Amount: 1})
	require.NoError(t, err)

	assert.NotEqual(t, first.Reference, second.Reference)
}

func TestSimulator_ContextCancellationAbortsCharge(t *testing.T) {
	cfg := &config.Config{Payment: &config.PaymentConfig{Delay: time.Minute, Outcome: "approved"}}
	gateway := NewSimulator(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	result, err := gateway.Charge(ctx, service.ChargeRequest{IdempotencyKey: "key-slow", Amount: 1})
	assert.Error(t, err)
	assert.Nil(t, result)
}
