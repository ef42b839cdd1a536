package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisConnOnce sync.Once
var redisConn *Redis

// Redis pairs an in-process miniredis server with a client connected to it.
type Redis struct {
	Client *redis.Client
	server *miniredis.Miniredis
}

func NewRedis() *Redis {
	if redisConn == nil {
		redisConnOnce.Do(
			func() {
				redisConn = openRedisConn()
			},
		)
	}

	return redisConn
}

func openRedisConn() *Redis {
	miniRedis, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	conn := redis.NewClient(
		&redis.Options{
			Addr: miniRedis.Addr(),
		},
	)

	return &Redis{Client: conn, server: miniRedis}
}

func (r *Redis) Clear() error {
	return r.Client.FlushAll(context.TODO()).Err()
}

// Blob returns the raw value stored under key, or false when it is absent.
func (r *Redis) Blob(key string) (string, bool) {
	value, err := r.server.Get(key)
	if err != nil {
		return "", false
	}
	return value, true
}
