package blobstore

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/macro-tracker/backend/internal/application/adapter"
	domainerror "github.com/macro-tracker/backend/internal/domain/error"
	"github.com/macro-tracker/backend/internal/integration/persistence/model"
)

// exerciseBlobStore checks the contract every backend must satisfy.
func exerciseBlobStore(t *testing.T, store adapter.BlobStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("ping succeeds", func(t *testing.T) {
		require.NoError(t, store.Ping(ctx))
	})

	t.Run("missing key returns ErrBlobNotFound", func(t *testing.T) {
		_, err := store.Get(ctx, adapter.FoodsKey)
		assert.ErrorIs(t, err, domainerror.ErrBlobNotFound)
	})

	t.Run("set then get returns the value", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, adapter.GoalsKey, []byte(`{"calories":1800}`)))

		value, err := store.Get(ctx, adapter.GoalsKey)
		require.NoError(t, err)
		assert.JSONEq(t, `{"calories":1800}`, string(value))
	})

	t.Run("set overwrites the previous value", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, adapter.EntriesKey, []byte(`[1]`)))
		require.NoError(t, store.Set(ctx, adapter.EntriesKey, []byte(`[1,2]`)))

		value, err := store.Get(ctx, adapter.EntriesKey)
		require.NoError(t, err)
		assert.Equal(t, `[1,2]`, string(value))
	})

	t.Run("keys are independent", func(t *testing.T) {
		_, err := store.Get(ctx, adapter.FoodsKey)
		assert.ErrorIs(t, err, domainerror.ErrBlobNotFound)
	})
}

func TestMemoryStore(t *testing.T) {
	exerciseBlobStore(t, NewMemoryStore())
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	value := []byte("abc")
	require.NoError(t, store.Set(ctx, "k", value))
	value[0] = 'x'

	stored, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(stored))
}

func TestRedisStore(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	exerciseBlobStore(t, NewRedisStore(client, ""))
}

func TestRedisStore_UsesKeyPrefix(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisStore(client, "user1:")
	require.NoError(t, store.Set(context.Background(), adapter.GoalsKey, []byte(`{}`)))

	assert.True(t, server.Exists("user1:"+adapter.GoalsKey))
	assert.False(t, server.Exists(adapter.GoalsKey))
}

func TestRedisStore_PingFailsWhenServerIsDown(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	server.Close()

	store := NewRedisStore(client, "")
	assert.Error(t, store.Ping(context.Background()))

	_, err := store.Get(context.Background(), adapter.GoalsKey)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domainerror.ErrBlobNotFound)
}

func TestSQLStore(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.KVBlobModel{}))

	exerciseBlobStore(t, NewSQLStore(db))

	var count int64
	require.NoError(t, db.Model(&model.KVBlobModel{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
