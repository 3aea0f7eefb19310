package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const rateLimitKeyPrefix = "rate_limit:"

// redisRateLimitStore implements [RateLimitStore] as a fixed-window counter:
// the first hit of a window creates the key with the window as its TTL and
// every later hit only increments it.
type redisRateLimitStore struct {
	client *redis.Client
}

// NewRedisRateLimitStore constructs a [RateLimitStore] on top of client.
func NewRedisRateLimitStore(client *redis.Client) RateLimitStore {
	return &redisRateLimitStore{client: client}
}

func (s *redisRateLimitStore) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	fullKey := rateLimitKey(key)

	var incr *redis.IntCmd
	var ttl *redis.DurationCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, fullKey)
		pipe.ExpireNX(ctx, fullKey, window)
		ttl = pipe.PTTL(ctx, fullKey)
		return nil
	})
	if err != nil {
		return 0, 0, fmt.Errorf("rate limit counter: %w", err)
	}

	resetIn := ttl.Val()
	if resetIn < 0 {
		resetIn = window
	}

	return incr.Val(), resetIn, nil
}

func rateLimitKey(key string) string {
	return rateLimitKeyPrefix + key
}

// nopRateLimitStore never limits. It is used when Redis is not configured.
type nopRateLimitStore struct{}

// NewNopRateLimitStore returns a [RateLimitStore] that counts nothing.
func NewNopRateLimitStore() RateLimitStore {
	return nopRateLimitStore{}
}

func (nopRateLimitStore) Hit(context.Context, string, time.Duration) (int64, time.Duration, error) {
	return 0, 0, nil
}
