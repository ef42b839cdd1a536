package persistence

import (
	"context"
	"slices"
	"sync"

	"github.com/macro-tracker/backend/internal/application/adapter"
	"github.com/macro-tracker/backend/internal/domain/entity"
	"github.com/macro-tracker/backend/internal/integration/persistence/model"
)

// entryRepository implements the adapter.EntryRepository interface.
type entryRepository struct {
	mu    sync.Mutex
	blobs adapter.BlobStore
	items []*entity.Entry
}

// Create appends an entry and writes the ledger. The append is undone if the write fails.
func (r *entryRepository) Create(ctx context.Context, entry *entity.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *entry
	r.items = append(r.items, &stored)
	if err := r.persist(ctx); err != nil {
		r.items = r.items[:len(r.items)-1]
		return err
	}
	return nil
}

// Delete removes the entry with the given ID. Unknown IDs are not an error and
// cause no write.
func (r *entryRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := slices.IndexFunc(r.items, func(e *entity.Entry) bool { return e.ID == id })
	if idx < 0 {
		return false, nil
	}

	previous := r.items
	r.items = slices.Delete(slices.Clone(r.items), idx, idx+1)
	if err := r.persist(ctx); err != nil {
		r.items = previous
		return false, err
	}
	return true, nil
}

// List returns a copy of the ledger in insertion order.
func (r *entryRepository) List(_ context.Context) ([]*entity.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := make([]*entity.Entry, len(r.items))
	for i, e := range r.items {
		entry := *e
		entries[i] = &entry
	}
	return entries, nil
}

func (r *entryRepository) persist(ctx context.Context) error {
	records := make([]model.EntryRecord, len(r.items))
	for i, e := range r.items {
		records[i] = model.EntryFromEntity(e)
	}
	return saveBlob(ctx, r.blobs, adapter.EntriesKey, records)
}
