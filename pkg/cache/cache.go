// Package cache provides content-addressed caching for analysis results.
//
// Analyzing a large network file is deterministic: the same bytes always
// produce the same report. The cache keys entries by a SHA-256 hash of the
// input document so repeated runs over unchanged files return instantly.
//
// Three backends are provided:
//   - FileCache: entries as files under a directory, for CLI usage
//   - RedisCache: shared cache for server deployments
//   - NullCache: no-op, for tests and --no-cache runs
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface shared by all backends.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was present; an absent key is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl stores the entry without
	// expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
