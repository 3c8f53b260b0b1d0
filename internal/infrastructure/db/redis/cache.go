package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	cachePrefix = "cabinet:view:"
	cacheTTL    = 5 * time.Minute
)

// ProjectionCache stores serialized per-user projections in Redis under the
// cabinet:view: namespace. Clear drops the whole namespace, which is how a
// visibility update invalidates every derived view at once.
type ProjectionCache struct {
	client *redis.Client
}

// NewProjectionCache creates a ProjectionCache wrapping the given Redis client.
func NewProjectionCache(client *redis.Client) *ProjectionCache {
	return &ProjectionCache{client: client}
}

// Get unmarshals the cached payload into dest and reports whether it existed.
func (p *ProjectionCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := p.client.Get(ctx, cachePrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("cache get: %w", err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("cache decode: %w", err)
	}
	return true, nil
}

// Set stores the value as JSON (expires after cacheTTL).
func (p *ProjectionCache) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return p.client.Set(ctx, cachePrefix+key, raw, cacheTTL).Err()
}

// Clear scan-deletes every key in the namespace.
func (p *ProjectionCache) Clear(ctx context.Context) error {
	iter := p.client.Scan(ctx, 0, cachePrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := p.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("cache clear: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("cache clear: %w", err)
	}
	return nil
}
