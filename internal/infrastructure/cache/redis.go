package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/rueidis"

	"github.com/shopsearch/backend/internal/domain"
)

// RedisCache is a cache backed by Redis via rueidis.
type RedisCache struct {
	client rueidis.Client
}

// NewRedisCache connects to Redis at the given addresses.
func NewRedisCache(addrs []string, password string) (*RedisCache, error) {
	if len(addrs) == 0 {
		return nil, fmt.Errorf("redis addrs are required")
	}

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  addrs,
		Password:     password,
		DisableCache: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create redis client: %w", err)
	}

	return &RedisCache{client: client}, nil
}

// Get retrieves a value by key.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	cmd := c.client.B().Get().Key(key).Build()
	data, err := c.client.Do(ctx, cmd).AsBytes()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, domain.ErrCacheMiss
		}
		return nil, fmt.Errorf("%w: get: %v", domain.ErrCacheUnavailable, err)
	}
	return data, nil
}

// Set stores a value with an expiration.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	cmd := c.client.B().Set().Key(key).Value(string(value)).Ex(ttl).Build()
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("%w: set: %v", domain.ErrCacheUnavailable, err)
	}
	return nil
}

// Delete removes a key.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	cmd := c.client.B().Del().Key(key).Build()
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("%w: del: %v", domain.ErrCacheUnavailable, err)
	}
	return nil
}

// Exists checks whether a key is present.
func (c *RedisCache) Exists(ctx context.Context, key string) (bool, error) {
	cmd := c.client.B().Exists().Key(key).Build()
	n, err := c.client.Do(ctx, cmd).AsInt64()
	if err != nil {
		return false, fmt.Errorf("%w: exists: %v", domain.ErrCacheUnavailable, err)
	}
	return n > 0, nil
}

// Ping checks connectivity.
func (c *RedisCache) Ping(ctx context.Context) error {
	cmd := c.client.B().Ping().Build()
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// WaitForReady polls Ping until Redis responds or the timeout expires.
func (c *RedisCache) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for redis: %w", ctx.Err())
		case <-ticker.C:
			if err := c.Ping(ctx); err == nil {
				return nil
			}
		}
	}
}

// Close shuts down the client.
func (c *RedisCache) Close() {
	c.client.Close()
}
