// Package cache stores the destination collection in Redis so several site
// instances can share one warm copy between database reads.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/nightowldevx/lakbayregion8/internal/domain"
	"github.com/nightowldevx/lakbayregion8/internal/metrics"
)

// AllDestinationsKey holds the JSON-encoded full collection.
const AllDestinationsKey = "destinations:all"

// RedisCache implements service.Cache on top of a go-redis client.
type RedisCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisCache returns a cache whose entries expire after ttl.
func NewRedisCache(client redis.UniversalClient, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// GetDestinations returns the cached collection. ok is false on a miss.
func (c *RedisCache) GetDestinations(ctx context.Context) ([]domain.Destination, bool, error) {
	raw, err := c.client.Get(ctx, AllDestinationsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.CacheMisses.WithLabelValues("redis").Inc()
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache.RedisCache.GetDestinations: %w", err)
	}

	var dests []domain.Destination
	if err := json.Unmarshal(raw, &dests); err != nil {
		return nil, false, fmt.Errorf("cache.RedisCache.GetDestinations: decode: %w", err)
	}
	metrics.CacheHits.WithLabelValues("redis").Inc()
	return dests, true, nil
}

// SetDestinations replaces the cached collection.
func (c *RedisCache) SetDestinations(ctx context.Context, dests []domain.Destination) error {
	raw, err := json.Marshal(dests)
	if err != nil {
		return fmt.Errorf("cache.RedisCache.SetDestinations: encode: %w", err)
	}
	if err := c.client.Set(ctx, AllDestinationsKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache.RedisCache.SetDestinations: %w", err)
	}
	return nil
}

// Ping reports whether Redis is reachable.
func (c *RedisCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("cache.RedisCache.Ping: %w", err)
	}
	return nil
}
