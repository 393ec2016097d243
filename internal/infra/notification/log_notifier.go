// Package notification delivers toast events to a configured surface. The
// storefront treats toasts as fire-and-forget: a failed delivery is logged,
// never surfaced to the request that raised it.
package notification

import (
	"context"
	"log/slog"

	"elegance/internal/domain/service"
)

// logNotifier writes toasts to the structured log. It is the default surface
// and the fallback when no notification section is configured.
type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a toast notifier backed by the service log.
func NewLogNotifier(logger *slog.Logger) service.ToastNotifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) Notify(_ context.Context, toast service.Toast) {
	n.logger.Info("[Toast] "+toast.Title,
		slog.String("message", toast.Message),
		slog.String("severity", string(toast.Severity)),
	)
}

func (n *logNotifier) Close() error {
	return nil
}
