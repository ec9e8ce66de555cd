package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key does not exist. Callers that
// treat absence as a normal outcome should check for it with errors.Is.
var ErrCacheMiss = errors.New("cache: key not found")

// Cache defines the key-value storage operations interface following
// hexagonal architecture. This is a port that can be implemented by
// different providers (Redis, Memcached, etc.).
type Cache interface {
	// Get retrieves a value by key. Returns ErrCacheMiss if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value under the specified key with the given TTL.
	// TTL of 0 means no expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value by key.
	Delete(ctx context.Context, key string) error

	// Ping checks if the storage service is reachable.
	Ping(ctx context.Context) error

	// Close closes the connection.
	Close() error
}
