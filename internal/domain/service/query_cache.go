package service

import (
	"context"
	"time"
)

// QueryCache caches JSON-serialized query results under string keys.
type QueryCache interface {
	// Get unmarshals the cached value for key into dest. The boolean
	// reports whether the key was present.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set stores value under key for the given TTL.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}
