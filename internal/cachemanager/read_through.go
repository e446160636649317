package cachemanager

import (
	"context"
	"time"
)

// ReadThrough memoizes a fetch function behind a Manager. Callers pass
// both the canonical cache key and the parsed input the fetch needs, so
// key construction stays at the call site.
type ReadThrough[V, I any] struct {
	cache  Manager[V]
	fetch  func(ctx context.Context, input I) (V, error)
	bypass bool
}

// NewReadThrough wraps fetch with cache; bypass skips the cache entirely.
func NewReadThrough[V, I any](
	cache Manager[V],
	fetch func(ctx context.Context, input I) (V, error),
	bypass bool,
) *ReadThrough[V, I] {
	return &ReadThrough[V, I]{
		cache:  cache,
		fetch:  fetch,
		bypass: bypass,
	}
}

// Get returns the cached value for key, fetching and storing it on a
// miss. Fetch errors are returned unchanged and never cached.
func (r *ReadThrough[V, I]) Get(ctx context.Context, key string, input I, ttl time.Duration) (V, error) {
	if r.bypass {
		return r.fetch(ctx, input)
	}

	if value, ok := r.cache.Get(ctx, key); ok {
		return value, nil
	}

	value, err := r.fetch(ctx, input)
	if err != nil {
		return value, err
	}

	r.cache.Set(ctx, key, value, ttl)

	return value, nil
}
