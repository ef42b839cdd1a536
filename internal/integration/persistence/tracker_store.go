// Package persistence implements repository interfaces on top of a blob store.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/macro-tracker/backend/internal/application/adapter"
	"github.com/macro-tracker/backend/internal/domain/entity"
	domainerror "github.com/macro-tracker/backend/internal/domain/error"
	"github.com/macro-tracker/backend/internal/infra/metrics"
	"github.com/macro-tracker/backend/internal/integration/persistence/model"
)

// TrackerStore holds the application state: the catalog, the ledger and the goals.
// Each store is loaded once by Open and written back after every mutation.
type TrackerStore struct {
	foods   *foodRepository
	entries *entryRepository
	goals   *goalsRepository
}

// Open loads the three stores from blobs. Missing keys start from the defaults and
// undecodable blobs are logged and replaced by the defaults. Only backend read
// failures are returned.
func Open(ctx context.Context, blobs adapter.BlobStore, defaultGoals entity.Goals) (*TrackerStore, error) {
	var foodRecords []model.FoodRecord
	if err := loadBlob(ctx, blobs, adapter.FoodsKey, &foodRecords); err != nil {
		return nil, err
	}

	var entryRecords []model.EntryRecord
	if err := loadBlob(ctx, blobs, adapter.EntriesKey, &entryRecords); err != nil {
		return nil, err
	}

	var goalsRecord *model.GoalsRecord
	if err := loadBlob(ctx, blobs, adapter.GoalsKey, &goalsRecord); err != nil {
		return nil, err
	}

	goals := defaultGoals
	if goalsRecord != nil {
		goals = goalsRecord.ToEntity()
	}

	foods := make([]*entity.Food, len(foodRecords))
	for i := range foodRecords {
		foods[i] = foodRecords[i].ToEntity()
	}

	entries := make([]*entity.Entry, len(entryRecords))
	for i := range entryRecords {
		entries[i] = entryRecords[i].ToEntity()
	}

	slog.Info("Tracker state loaded",
		"foods", len(foods),
		"entries", len(entries),
	)

	return &TrackerStore{
		foods:   &foodRepository{blobs: blobs, items: foods},
		entries: &entryRepository{blobs: blobs, items: entries},
		goals:   &goalsRepository{blobs: blobs, goals: goals},
	}, nil
}

// Foods returns the catalog repository.
func (s *TrackerStore) Foods() adapter.FoodRepository {
	return s.foods
}

// Entries returns the ledger repository.
func (s *TrackerStore) Entries() adapter.EntryRepository {
	return s.entries
}

// Goals returns the goals repository.
func (s *TrackerStore) Goals() adapter.GoalsRepository {
	return s.goals
}

// loadBlob decodes the blob under key into v. A missing key leaves v untouched.
// A corrupt blob is reported as a PersistenceDecodeError in the log and v is reset.
func loadBlob[T any](ctx context.Context, blobs adapter.BlobStore, key string, v *T) error {
	data, err := blobs.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domainerror.ErrBlobNotFound) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", key, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		var zero T
		*v = zero

		decodeErr := domainerror.NewPersistenceDecodeError(key, err)
		slog.Warn("Stored blob is corrupt, falling back to defaults",
			"key", key,
			"error", decodeErr,
		)
		metrics.RecordDecodeFallback(key)
	}

	return nil
}

// saveBlob encodes v and writes it under key.
func saveBlob(ctx context.Context, blobs adapter.BlobStore, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return domainerror.NewPersistenceWriteError(key, err)
	}

	err = blobs.Set(ctx, key, data)
	metrics.RecordBlobWrite(key, err)
	if err != nil {
		slog.Error("Failed to persist blob", "key", key, "error", err)
		return domainerror.NewPersistenceWriteError(key, err)
	}
	return nil
}
