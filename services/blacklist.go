package services

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const blacklistKeyPrefix = "revoked_refresh:"

// RedisBlacklist stores revoked refresh token ids in redis with a TTL
// matching the token's remaining lifetime. Without redis, revocation
// degrades to a no-op and tokens simply age out.
type RedisBlacklist struct {
	client *redis.Client
}

func NewRedisBlacklist(client *redis.Client) *RedisBlacklist {
	return &RedisBlacklist{client: client}
}

func (b *RedisBlacklist) Add(ctx context.Context, jti string, ttl time.Duration) error {
	if b.client == nil {
		return nil
	}
	return b.client.Set(ctx, blacklistKeyPrefix+jti, "1", ttl).Err()
}

func (b *RedisBlacklist) Contains(ctx context.Context, jti string) bool {
	if b.client == nil {
		return false
	}
	n, err := b.client.Exists(ctx, blacklistKeyPrefix+jti).Result()
	return err == nil && n > 0
}
