package kvstore

import (
	"context"
	"log/slog"

	"elegance/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Store provider names accepted in config.
const (
	ProviderFile   = "file"
	ProviderMemory = "memory"
	ProviderRedis  = "redis"
)

// StoreParams holds dependencies for the store, injected by Fx.
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewStore creates a Store based on configuration and registers its shutdown.
func NewStore(params StoreParams) (Store, error) {
	cfg := params.Config.Store
	logger := params.Logger

	var store Store
	var err error

	switch cfg.Provider {
	case ProviderFile, "":
		path := cfg.Path
		if path == "" {
			path = "data"
		}
		logger.Info("Using file key-value store", slog.String("path", path))
		store, err = NewFileStore(path)
		if err != nil {
			return nil, err
		}

	case ProviderMemory:
		logger.Info("Using in-memory key-value store; state will not survive restarts")
		store = NewMemoryStore()

	case ProviderRedis:
		if cfg.Redis == nil || cfg.Redis.Addr == "" {
			return nil, errors.New("redis address is required for redis provider")
		}
		logger.Info("Using redis key-value store", slog.String("addr", cfg.Redis.Addr))
		store, err = NewRedisStore(params.Ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown store provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing key-value store")

			return store.Close()
		},
	})

	return store, nil
}
