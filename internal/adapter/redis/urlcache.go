package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const urlKeyPrefix = "proof:url:"

// URLCache stores resolved proof access URLs until shortly before they expire.
type URLCache struct {
	client redis.Cmdable
}

// NewURLCache creates a cache over an existing client.
func NewURLCache(client redis.Cmdable) *URLCache {
	return &URLCache{client: client}
}

// Get returns the cached URL stored under key. ok is false on a miss.
// Callers build keys that include the owning tenant.
func (c *URLCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Get(ctx, urlKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Set stores a URL for ttl.
func (c *URLCache) Set(ctx context.Context, key, url string, ttl time.Duration) error {
	return c.client.Set(ctx, urlKeyPrefix+key, url, ttl).Err()
}

// Invalidate drops a cached URL, used when its proof is detached.
func (c *URLCache) Invalidate(ctx context.Context, key string) error {
	return c.client.Del(ctx, urlKeyPrefix+key).Err()
}
