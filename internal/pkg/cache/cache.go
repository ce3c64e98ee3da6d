package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache stores JSON values under a key prefix.
// A nil client disables it: reads miss and writes are dropped.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCache creates a cache. client may be nil.
func NewRedisCache(client *redis.Client, prefix string, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, prefix: prefix, ttl: ttl}
}

// Enabled reports whether a Redis client is configured.
func (c *RedisCache) Enabled() bool {
	return c != nil && c.client != nil
}

func (c *RedisCache) key(k string) string {
	return c.prefix + k
}

// GetJSON decodes the cached value into dst and reports whether it was found.
func (c *RedisCache) GetJSON(ctx context.Context, key string, dst interface{}) (bool, error) {
	if !c.Enabled() {
		return false, nil
	}

	raw, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	return true, nil
}

// SetJSON stores value with the configured TTL.
func (c *RedisCache) SetJSON(ctx context.Context, key string, value interface{}) error {
	if !c.Enabled() {
		return nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, c.key(key), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Flush deletes every key under the cache prefix and returns how many were removed.
func (c *RedisCache) Flush(ctx context.Context) (int, error) {
	if !c.Enabled() {
		return 0, nil
	}

	removed := 0
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return removed, fmt.Errorf("cache delete %s: %w", iter.Val(), err)
		}
		removed++
	}
	if err := iter.Err(); err != nil {
		return removed, fmt.Errorf("cache scan: %w", err)
	}
	return removed, nil
}
