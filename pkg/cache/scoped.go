package cache

import (
	"context"
	"time"
)

// ScopedCache wraps a Cache with a key prefix. It keeps independent
// concerns (network reports, demand reports) from colliding when they
// share one backend, and lets a server instance namespace its entries
// on a shared Redis.
type ScopedCache struct {
	inner  Cache
	prefix string
}

// Scoped wraps c so that all keys carry the given prefix.
func Scoped(c Cache, prefix string) Cache {
	return &ScopedCache{inner: c, prefix: prefix}
}

// Get retrieves a value under the prefixed key.
func (c *ScopedCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return c.inner.Get(ctx, c.prefix+key)
}

// Set stores a value under the prefixed key.
func (c *ScopedCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.inner.Set(ctx, c.prefix+key, data, ttl)
}

// Delete removes the value under the prefixed key.
func (c *ScopedCache) Delete(ctx context.Context, key string) error {
	return c.inner.Delete(ctx, c.prefix+key)
}

// Close closes the underlying cache.
func (c *ScopedCache) Close() error {
	return c.inner.Close()
}

// Ensure ScopedCache implements Cache.
var _ Cache = (*ScopedCache)(nil)
