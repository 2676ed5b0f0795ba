package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisOpTimeout = 3 * time.Second

// RedisSubstrate backs the store with a shared Redis instance so several
// dashboard replicas (or tabs, in local-storage terms) see the same state.
// There is no cross-client coordination: last writer wins.
type RedisSubstrate struct {
	client *redis.Client
	prefix string
}

// NewRedisSubstrate parses redisURL, verifies connectivity, and namespaces
// every key under prefix.
func NewRedisSubstrate(ctx context.Context, redisURL, prefix string) (*RedisSubstrate, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL(%q): %w", redisURL, err)
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &RedisSubstrate{client: client, prefix: prefix}, nil
}

func (s *RedisSubstrate) key(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + ":" + key
}

func (s *RedisSubstrate) Get(key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	v, err := s.client.Get(ctx, s.key(key)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *RedisSubstrate) Set(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	// Expiry is the Store's job (the envelope timestamp), not Redis's.
	return s.client.Set(ctx, s.key(key), value, 0).Err()
}

func (s *RedisSubstrate) Delete(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	return s.client.Del(ctx, s.key(key)).Err()
}

// Close releases the underlying connection pool.
func (s *RedisSubstrate) Close() error {
	return s.client.Close()
}
