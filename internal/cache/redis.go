// Package cache holds rendered JSON bodies of the public recipe endpoints
// in Redis so repeated reads skip the database.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sebacontegrand/recetasjanet/internal/config"
)

// Store is the page cache contract shared by Redis and Nop.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, body []byte) error
	Invalidate(ctx context.Context) error
}

// scanBatch is the COUNT hint for SCAN during invalidation.
const scanBatch = 200

// Redis is a page cache backed by a Redis client. Every key is stored
// under a common prefix so Invalidate can drop them all.
type Redis struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

// Connect creates a Redis client from cfg and verifies connectivity.
func Connect(ctx context.Context, cfg config.RedisConfig) (*Redis, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return New(rdb, cfg.KeyPrefix, cfg.TTL), nil
}

// New wraps an existing client.
func New(rdb *redis.Client, prefix string, ttl time.Duration) *Redis {
	return &Redis{rdb: rdb, prefix: prefix, ttl: ttl}
}

// Get returns the cached body for key. A miss is (nil, false, nil).
func (c *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.rdb.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get %s: %w", key, err)
	}
	return val, true, nil
}

// Set stores body under key for the configured TTL.
func (c *Redis) Set(ctx context.Context, key string, body []byte) error {
	if err := c.rdb.Set(ctx, c.prefix+key, body, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Invalidate deletes every key under the prefix.
func (c *Redis) Invalidate(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, c.prefix+"*", scanBatch).Iterator()

	batch := make([]string, 0, scanBatch)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == scanBatch {
			if err := c.rdb.Del(ctx, batch...).Err(); err != nil {
				return fmt.Errorf("cache invalidate: %w", err)
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("cache invalidate: scan: %w", err)
	}
	if len(batch) > 0 {
		if err := c.rdb.Del(ctx, batch...).Err(); err != nil {
			return fmt.Errorf("cache invalidate: %w", err)
		}
	}
	return nil
}

// Ping checks the connection. Used by the health endpoint.
func (c *Redis) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close releases the client's connections.
func (c *Redis) Close() error {
	return c.rdb.Close()
}

// Nop is used when no Redis URL is configured. Every Get misses.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (Nop) Set(context.Context, string, []byte) error         { return nil }
func (Nop) Invalidate(context.Context) error                  { return nil }
