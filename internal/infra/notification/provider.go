package notification

import (
	"context"
	"log/slog"

	"elegance/config"
	"elegance/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// ProviderLog writes toasts to the structured log.
	ProviderLog = "log"
	// ProviderWebhook POSTs toasts to an HTTP endpoint.
	ProviderWebhook = "webhook"
)

// NotifierParams holds dependencies for ToastNotifier, injected by Fx.
type NotifierParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewToastNotifier creates a ToastNotifier based on configuration.
func NewToastNotifier(params NotifierParams) (service.ToastNotifier, error) {
	cfg := params.Config.Notification
	logger := params.Logger

	var notifier service.ToastNotifier

	switch {
	case cfg == nil || cfg.Provider == "" || cfg.Provider == ProviderLog:
		notifier = NewLogNotifier(logger)

	case cfg.Provider == ProviderWebhook:
		if cfg.Endpoint == "" {
			return nil, errors.New("endpoint is required for webhook provider")
		}
		logger.Info("Using webhook toast notifier", slog.String("endpoint", cfg.Endpoint))

		notifier = NewWebhookNotifier(cfg.Endpoint, logger)

	default:
		return nil, errors.Errorf("unknown notification provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing ToastNotifier")

			return notifier.Close()
		},
	})

	return notifier, nil
}
