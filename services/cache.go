package services

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a read-through cache for serialized payloads. Implementations
// are best-effort: a miss or failure is never an error, callers always
// fall back to the authoritative store.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
}

// RedisCache wraps an optional redis client; a nil client behaves as an
// always-miss cache.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	if c.client == nil {
		return "", false
	}
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return value, true
}

func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if c.client == nil {
		return
	}
	c.client.Set(ctx, key, value, ttl)
}
