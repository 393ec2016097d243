package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"elegance/internal/domain/service"

	"github.com/google/uuid"
)

// webhookEvent is the envelope posted to the configured endpoint. The event
// id lets a receiving surface deduplicate redeliveries.
type webhookEvent struct {
	EventID   string        `json:"eventId"`
	EmittedAt string        `json:"emittedAt"`
	Toast     service.Toast `json:"toast"`
}

// webhookNotifier POSTs each toast to an HTTP endpoint, letting a separate
// presentation process render them.
type webhookNotifier struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewWebhookNotifier creates a toast notifier that POSTs to endpoint.
func NewWebhookNotifier(endpoint string, logger *slog.Logger) service.ToastNotifier {
	return &webhookNotifier{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

func (n *webhookNotifier) Notify(ctx context.Context, toast service.Toast) {
	event := webhookEvent{
		EventID:   uuid.NewString(),
		EmittedAt: time.Now().UTC().Format(time.RFC3339),
		Toast:     toast,
	}

	body, err := json.Marshal(event)
	if err != nil {
		n.logger.Error("Failed to encode toast event", slog.Any("error", err))

		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		n.logger.Error("Failed to build toast request", slog.Any("error", err))

		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		n.logger.Warn("Toast delivery failed",
			slog.String("endpoint", n.endpoint),
			slog.Any("error", err),
		)

		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		n.logger.Warn("Toast endpoint returned non-success status",
			slog.String("endpoint", n.endpoint),
			slog.Int("status", resp.StatusCode),
		)
	}
}

func (n *webhookNotifier) Close() error {
	n.httpClient.CloseIdleConnections()

	return nil
}
