package adapter

import (
	"context"

	"github.com/macro-tracker/backend/internal/domain/entity"
)

// EntryRepository defines the interface for ledger operations.
type EntryRepository interface {
	// Create appends an entry to the ledger and persists the ledger.
	Create(ctx context.Context, entry *entity.Entry) error

	// Delete removes the entry with the given ID. It reports whether an entry was removed.
	Delete(ctx context.Context, id string) (bool, error)

	// List returns the whole ledger in insertion order.
	List(ctx context.Context) ([]*entity.Entry, error)
}
