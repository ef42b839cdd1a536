// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// Blob keys of the three tracker stores.
const (
	FoodsKey   = "macro-tracker-foods"
	EntriesKey = "macro-tracker-entries"
	GoalsKey   = "macro-tracker-goals"
)

// BlobStore defines a durable key-value store holding one text blob per key.
type BlobStore interface {
	// Get returns the blob stored under key, or domainerror.ErrBlobNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the blob stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
}
