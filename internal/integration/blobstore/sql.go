package blobstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/macro-tracker/backend/internal/application/adapter"
	domainerror "github.com/macro-tracker/backend/internal/domain/error"
	"github.com/macro-tracker/backend/internal/integration/persistence/model"
)

// sqlStore keeps blobs as rows of the kv_blobs table.
type sqlStore struct {
	db *gorm.DB
}

// NewSQLStore creates a blob store on db. The kv_blobs table must already exist.
func NewSQLStore(db *gorm.DB) adapter.BlobStore {
	return &sqlStore{
		db: db,
	}
}

// Get returns the blob stored under key.
func (s *sqlStore) Get(ctx context.Context, key string) ([]byte, error) {
	var blob model.KVBlobModel
	result := s.db.WithContext(ctx).Where("blob_key = ?", key).First(&blob)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBlobNotFound
		}
		return nil, fmt.Errorf("query blob %s: %w", key, result.Error)
	}
	return []byte(blob.Value), nil
}

// Set inserts or replaces the blob stored under key.
func (s *sqlStore) Set(ctx context.Context, key string, value []byte) error {
	blob := model.KVBlobModel{
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now().UTC(),
	}

	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "blob_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&blob)
	if result.Error != nil {
		return fmt.Errorf("upsert blob %s: %w", key, result.Error)
	}
	return nil
}

// Ping checks the database connection.
func (s *sqlStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
