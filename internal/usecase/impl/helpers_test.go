package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"elegance/config"
	"elegance/internal/domain/service"

	"github.com/pkg/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AdminEmail:     "admin@cafeelegance.com",
			AdminPassword:  "coffee123",
			LoginDelay:     time.Millisecond,
			AccessTokenTTL: time.Hour,
		},
		Payment: &config.PaymentConfig{
			Delay:    time.Millisecond,
			Outcome:  "approved",
			Currency: "USD",
		},
	}

	return cfg
}

// recordingNotifier captures toasts for assertions.
type recordingNotifier struct {
	mu     sync.Mutex
	toasts []service.Toast
}

func (n *recordingNotifier) Notify(_ context.Context, toast service.Toast) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toasts = append(n.toasts, toast)
}

func (n *recordingNotifier) Close() error { return nil }

func (n *recordingNotifier) last() (service.Toast, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.toasts) == 0 {
		return service.Toast{}, false
	}

	return n.toasts[len(n.toasts)-1], true
}

// scriptedGateway returns a fixed decision and records every request.
type scriptedGateway struct {
	result *service.ChargeResult
	err    error

	mu       sync.Mutex
	requests []service.ChargeRequest
}

func (g *scriptedGateway) Charge(_ context.Context, req service.ChargeRequest) (*service.ChargeResult, error) {
	g.mu.Lock()
	g.requests = append(g.requests, req)
	g.mu.Unlock()

	if g.err != nil {
		return nil, g.err
	}

	return g.result, nil
}

func approvedGateway(reference string) *scriptedGateway {
	return &scriptedGateway{result: &service.ChargeResult{
		Outcome:   service.OutcomeApproved,
		Reference: reference,
	}}
}

// plainHasher is a non-cryptographic stand-in for bcrypt in tests.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// staticTokens signs predictable tokens.
type staticTokens struct{}

func (staticTokens) Generate(userID string, _ []string) (string, error) {
	return "token-" + userID, nil
}

func (staticTokens) Validate(string) (*service.Claims, error) {
	return nil, errors.New("not implemented")
}
