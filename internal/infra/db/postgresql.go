package db

import (
	"gorm.io/driver/postgres"

	"github.com/macro-tracker/backend/config"
)

// NewPostgresConnection connects to the PostgreSQL server at cfg.URL.
func NewPostgresConnection(cfg *config.DatabaseConfig) (*Database, error) {
	return open(postgres.Open(cfg.URL), config.StorageDriverPostgres, pool{
		maxOpen:     cfg.MaxOpenConns,
		maxIdle:     cfg.MaxIdleConns,
		maxLifetime: cfg.ConnMaxLifetime,
	})
}
