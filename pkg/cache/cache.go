package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tair/backoffice/pkg/logger"
)

// ErrMiss is returned by Get when the key is absent
var ErrMiss = errors.New("cache miss")

// Cache stores JSON documents in Redis. A nil client makes every call a miss/no-op so
// callers need not branch on whether Redis is configured.
type Cache struct {
	redis  *redis.Client
	prefix string
	ttl    time.Duration
}

// New creates a cache whose keys all start with prefix
func New(client *redis.Client, prefix string, ttl time.Duration) *Cache {
	return &Cache{redis: client, prefix: prefix, ttl: ttl}
}

// Key builds a namespaced key from parts
func (c *Cache) Key(parts ...string) string {
	key := c.prefix
	for _, p := range parts {
		key += ":" + p
	}
	return key
}

// Get decodes the cached value into dst
func (c *Cache) Get(ctx context.Context, key string, dst any) error {
	if c == nil || c.redis == nil {
		return ErrMiss
	}

	raw, err := c.redis.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrMiss
	}
	if err != nil {
		return fmt.Errorf("cache get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("cache decode %s: %w", key, err)
	}

	logger.Debug(ctx).Str("cache_key", key).Msg("Cache hit")
	return nil
}

// Set stores value under key with the cache TTL
func (c *Cache) Set(ctx context.Context, key string, value any) error {
	if c == nil || c.redis == nil {
		return nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	if err := c.redis.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Invalidate deletes every key under the cache prefix
func (c *Cache) Invalidate(ctx context.Context) error {
	if c == nil || c.redis == nil {
		return nil
	}

	iter := c.redis.Scan(ctx, 0, c.prefix+":*", 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	if len(keys) > 0 {
		if err := c.redis.Del(ctx, keys...).Err(); err != nil {
			return err
		}
		logger.Info(ctx).
			Int("count", len(keys)).
			Str("prefix", c.prefix).
			Msg("Cache invalidated")
	}
	return nil
}
