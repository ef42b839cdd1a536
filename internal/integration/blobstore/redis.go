package blobstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/macro-tracker/backend/internal/application/adapter"
	domainerror "github.com/macro-tracker/backend/internal/domain/error"
)

// redisStore keeps each blob as a plain Redis string.
type redisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a blob store on client. Keys are stored as prefix+key.
func NewRedisStore(client *redis.Client, prefix string) adapter.BlobStore {
	return &redisStore{
		client: client,
		prefix: prefix,
	}
}

// Get returns the blob stored under key.
func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainerror.ErrBlobNotFound
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, nil
}

// Set stores value under key without expiry.
func (s *redisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Ping checks the Redis connection.
func (s *redisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
