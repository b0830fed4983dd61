package cache

import (
	"context"
	"sync"
)

// Cache is a small concurrency-safe map. The HTTP layer uses it to keep
// assembled token lists hot between requests.
type Cache[K comparable, V any] struct {
	mu sync.RWMutex
	m  map[K]V
}

func New[K comparable, V any](size int) *Cache[K, V] {
	return &Cache[K, V]{
		m: make(map[K]V, size),
	}
}

func (c *Cache[K, V]) Get(_ context.Context, k K) (V, bool) {
	c.mu.RLock()
	v, ok := c.m[k]
	c.mu.RUnlock()
	return v, ok
}

func (c *Cache[K, V]) Set(_ context.Context, k K, v V) {
	c.mu.Lock()
	c.m[k] = v
	c.mu.Unlock()
}

func (c *Cache[K, V]) Delete(_ context.Context, k K) {
	c.mu.Lock()
	delete(c.m, k)
	c.mu.Unlock()
}

func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}
