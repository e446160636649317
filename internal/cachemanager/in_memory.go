package cachemanager

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/petersancho/semreg/internal/log"
)

// InMemory is a go-cache backed Manager. Values are stored untyped and
// asserted back on read; an entry of the wrong type counts as a miss.
type InMemory[V any] struct {
	useCase string
	cache   *gocache.Cache
}

// NewInMemory returns a cache labeled with a use case for log lines.
func NewInMemory[V any](useCase string, defaultExpiration, cleanupInterval time.Duration) *InMemory[V] {
	return &InMemory[V]{
		useCase: useCase,
		cache:   gocache.New(defaultExpiration, cleanupInterval),
	}
}

// Get retrieves an item from the cache by its key.
func (c *InMemory[V]) Get(ctx context.Context, key string) (V, bool) {
	var zero V

	value, found := c.cache.Get(key)
	if !found {
		return zero, false
	}

	v, ok := value.(V)
	if !ok {
		log.Error(log.CatCache, "wrong type assertion when getting value", "use_case", c.useCase, "key", key)

		return zero, false
	}

	log.Debug(log.CatCache, "cache hit", "use_case", c.useCase, "key", key)

	return v, true
}

// Set stores a value in the cache with a key and TTL.
func (c *InMemory[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) {
	c.cache.Set(key, value, ttl)
}

// Delete removes values from the cache by key.
func (c *InMemory[V]) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		c.cache.Delete(key)
	}

	return nil
}

// Flush drops every entry.
func (c *InMemory[V]) Flush(ctx context.Context) error {
	c.cache.Flush()

	return nil
}
