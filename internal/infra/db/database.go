// Package db opens the gorm connections behind the SQL blob store.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/macro-tracker/backend/internal/integration/persistence/model"
)

// Database is a gorm connection to one of the SQL storage drivers.
type Database struct {
	db     *gorm.DB
	driver string
}

type pool struct {
	maxOpen     int
	maxIdle     int
	maxLifetime time.Duration
}

// open connects through dialector, applies the pool limits and pings the server.
func open(dialector gorm.Dialector, driver string, p pool) (*Database, error) {
	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if p.maxOpen > 0 {
		sqlDB.SetMaxOpenConns(p.maxOpen)
	}
	if p.maxIdle > 0 {
		sqlDB.SetMaxIdleConns(p.maxIdle)
	}
	if p.maxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(p.maxLifetime)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", driver, err)
	}

	slog.Info("Database connection established",
		"driver", driver,
		"max_open_conns", p.maxOpen,
	)

	return &Database{db: conn, driver: driver}, nil
}

// DB returns the gorm handle.
func (d *Database) DB() *gorm.DB {
	return d.db
}

// Driver returns the storage driver name of the connection.
func (d *Database) Driver() string {
	return d.driver
}

// MigrateBlobs creates or updates the kv_blobs table.
func (d *Database) MigrateBlobs() error {
	if err := d.db.AutoMigrate(&model.KVBlobModel{}); err != nil {
		return fmt.Errorf("failed to migrate kv_blobs: %w", err)
	}
	slog.Info("Database migrations completed successfully", "driver", d.driver)
	return nil
}

// HealthCheck pings the database.
func (d *Database) HealthCheck() bool {
	sqlDB, err := d.db.DB()
	if err != nil {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		slog.Error("Database health check failed", "driver", d.driver, "error", err)
		return false
	}
	return true
}

// Close closes the connection pool.
func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB for closing: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close %s connection: %w", d.driver, err)
	}

	slog.Info("Database connection closed", "driver", d.driver)
	return nil
}
