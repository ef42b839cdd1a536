package dependency

import (
	"context"
	"log/slog"

	"github.com/macro-tracker/backend/config"
	"github.com/macro-tracker/backend/internal/application/adapter"
)

// Bootstrap connects the configured storage and loads the tracker from it.
// When the backend cannot be reached, or its state cannot be read, the
// application starts on memory storage instead.
func Bootstrap(ctx context.Context, cfg *config.Config, clock adapter.Clock) (*Injector, error) {
	storage, err := NewStorage(cfg)
	if err != nil {
		slog.Warn("Storage connection failed, running with in-memory storage",
			"driver", cfg.Storage.Driver,
			"error", err,
		)
		storage = NewMemoryStorage()
	}

	injector, err := NewInjector(ctx, cfg, storage, clock)
	if err == nil {
		return injector, nil
	}
	if storage.Driver == config.StorageDriverMemory {
		return nil, err
	}

	slog.Warn("Loading tracker state failed, running with in-memory storage",
		"driver", storage.Driver,
		"error", err,
	)
	if closeErr := storage.Close(); closeErr != nil {
		slog.Error("Failed to close storage", "error", closeErr)
	}

	return NewInjector(ctx, cfg, NewMemoryStorage(), clock)
}
