package client

import "sync"

// resourceCache is the read-through cache shared by the reference stores.
// Entries are keyed by resource type and invalidated whenever that resource
// is mutated, so a mis-sequenced call site can never observe a stale list
// after its own write.
type resourceCache[T any] struct {
	mu      sync.Mutex
	entries map[string]T
}

func newResourceCache[T any]() *resourceCache[T] {
	return &resourceCache[T]{entries: map[string]T{}}
}

// Get retrieves a cached value.
func (c *resourceCache[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.entries[key]
	return value, ok
}

// Set stores a value.
func (c *resourceCache[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// Invalidate drops one resource type's entry.
func (c *resourceCache[T]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Clear drops everything.
func (c *resourceCache[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = map[string]T{}
}

// Size returns the number of cached resource types.
func (c *resourceCache[T]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
