package dependency

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macro-tracker/backend/config"
	"github.com/macro-tracker/backend/internal/application/adapter"
)

func redisConfig(addr string) *config.Config {
	return &config.Config{
		Storage: config.StorageConfig{Driver: config.StorageDriverRedis},
		Redis:   config.RedisConfig{URL: "redis://" + addr + "/0"},
		Tracker: config.TrackerConfig{
			TrendDays:       7,
			DefaultCalories: 2000,
			DefaultProtein:  150,
			DefaultCarbs:    200,
			DefaultFats:     70,
		},
	}
}

func TestBootstrap_UsesConfiguredStorage(t *testing.T) {
	server := miniredis.RunT(t)

	injector, err := Bootstrap(context.Background(), redisConfig(server.Addr()), utcClock{})
	require.NoError(t, err)
	defer injector.Storage.Close()

	assert.Equal(t, config.StorageDriverRedis, injector.Storage.Driver)
}

func TestBootstrap_UnreachableBackendFallsBackToMemory(t *testing.T) {
	injector, err := Bootstrap(context.Background(), redisConfig("127.0.0.1:1"), utcClock{})
	require.NoError(t, err)

	assert.Equal(t, config.StorageDriverMemory, injector.Storage.Driver)
}

func TestBootstrap_UnreadableStateFallsBackToMemory(t *testing.T) {
	server := miniredis.RunT(t)
	// A list under the key makes GET fail with WRONGTYPE after the connection succeeds.
	_, err := server.Lpush(adapter.FoodsKey, "not a string")
	require.NoError(t, err)

	injector, err := Bootstrap(context.Background(), redisConfig(server.Addr()), utcClock{})
	require.NoError(t, err)

	assert.Equal(t, config.StorageDriverMemory, injector.Storage.Driver)

	foods, err := injector.Store.Foods().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, foods)
}
