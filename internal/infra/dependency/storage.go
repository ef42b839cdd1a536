package dependency

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/macro-tracker/backend/config"
	"github.com/macro-tracker/backend/internal/application/adapter"
	"github.com/macro-tracker/backend/internal/infra/cache"
	"github.com/macro-tracker/backend/internal/infra/db"
	"github.com/macro-tracker/backend/internal/integration/blobstore"
)

// Storage is the blob store selected by STORAGE_DRIVER together with its lifecycle.
type Storage struct {
	Blobs  adapter.BlobStore
	Driver string
	close  func() error
}

// NewStorage connects to the configured blob backend.
func NewStorage(cfg *config.Config) (*Storage, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		return NewMemoryStorage(), nil

	case config.StorageDriverSQLite, config.StorageDriverPostgres:
		var (
			database *db.Database
			err      error
		)
		if cfg.Storage.Driver == config.StorageDriverSQLite {
			database, err = db.NewSQLiteConnection(cfg.Storage.SQLitePath)
		} else {
			database, err = db.NewPostgresConnection(&cfg.Database)
		}
		if err != nil {
			return nil, err
		}

		if err := database.MigrateBlobs(); err != nil {
			_ = database.Close()
			return nil, err
		}

		return &Storage{
			Blobs:  blobstore.NewSQLStore(database.DB()),
			Driver: database.Driver(),
			close:  database.Close,
		}, nil

	case config.StorageDriverRedis:
		client, err := cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return &Storage{
			Blobs:  blobstore.NewRedisStore(client, cfg.Redis.KeyPrefix),
			Driver: config.StorageDriverRedis,
			close:  client.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// NewMemoryStorage creates process-local storage. Nothing survives a restart.
func NewMemoryStorage() *Storage {
	return &Storage{
		Blobs:  blobstore.NewMemoryStore(),
		Driver: config.StorageDriverMemory,
	}
}

// HealthCheck reports whether the backend answers a ping.
func (s *Storage) HealthCheck() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.Blobs.Ping(ctx); err != nil {
		slog.Error("Storage health check failed", "driver", s.Driver, "error", err)
		return false
	}
	return true
}

// Close releases the backend connection.
func (s *Storage) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}
