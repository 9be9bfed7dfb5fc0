// Package cache provides pluggable byte-oriented caching for registry
// responses.
//
// Three backends are available:
//
//   - [FileCache]: entries stored as JSON files under a directory, suitable
//     for a single host (the default for the CLI and server)
//   - [RedisCache]: entries stored in Redis, suitable when several instances
//     share one cache
//   - [NullCache]: stores nothing, for tests or --no-cache runs
//
// Keys are arbitrary strings; callers namespace them (e.g. "pypi:requests")
// to avoid collisions between data sources.
package cache

import (
	"context"
	"time"
)

// Cache stores raw byte values under string keys with a per-entry TTL.
//
// A TTL of 0 means the entry never expires. Get distinguishes a miss
// (false, nil error) from a backend failure (false, non-nil error);
// expired entries count as misses.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
