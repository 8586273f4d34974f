// Package cache provides the persistent lookup-outcome cache keyed by
// normalized ISBN, with a Redis backend for production and an in-process
// backend for tests and cache-less deployments.
package cache

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrCacheMiss indicates the requested key was not found in cache.
	ErrCacheMiss = errors.New("cache miss")

	// ErrInvalidEntry indicates the cache entry is invalid or corrupted.
	ErrInvalidEntry = errors.New("invalid cache entry")
)

// Store is the get/put-with-TTL abstraction the resolver depends on.
// Backends must return ErrCacheMiss for absent or expired keys.
type Store interface {
	// Get retrieves the entry stored under key.
	Get(ctx context.Context, key string) (*Entry, error)

	// Set stores an entry under key with the given TTL.
	Set(ctx context.Context, key string, entry *Entry, ttl time.Duration) error

	// Delete removes an entry.
	Delete(ctx context.Context, key string) error
}

// Key builds the cache key for a normalized ISBN.
// Format: isbn:{normalized identifier}.
func Key(normalized string) string {
	return "isbn:" + normalized
}
