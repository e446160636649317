// Package cachemanager provides a typed TTL cache used to memoize
// read-heavy registry queries. The registry is append-only after
// bootstrap, so cached query results never go stale within a process.
package cachemanager

import (
	"context"
	"time"
)

const DefaultExpiration = 10 * time.Minute
const DefaultCleanupInterval = 30 * time.Minute

// Manager is the read/write cache surface handed to memoizing callers.
type Manager[V any] interface {
	Get(ctx context.Context, key string) (V, bool)
	Set(ctx context.Context, key string, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...string) error
	Flush(ctx context.Context) error
}
