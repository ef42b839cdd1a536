// Package blobstore implements adapter.BlobStore on the supported backends.
package blobstore

import (
	"context"
	"sync"

	"github.com/macro-tracker/backend/internal/application/adapter"
	domainerror "github.com/macro-tracker/backend/internal/domain/error"
)

// memoryStore keeps blobs in process memory. Contents are lost on exit.
type memoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStore creates an empty in-memory blob store.
func NewMemoryStore() adapter.BlobStore {
	return &memoryStore{
		blobs: make(map[string][]byte),
	}
}

// Get returns a copy of the blob stored under key.
func (s *memoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.blobs[key]
	if !ok {
		return nil, domainerror.ErrBlobNotFound
	}
	return append([]byte(nil), value...), nil
}

// Set stores a copy of value under key.
func (s *memoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[key] = append([]byte(nil), value...)
	return nil
}

// Ping always succeeds.
func (s *memoryStore) Ping(_ context.Context) error {
	return nil
}
