// Package typecache memoizes facts derived from reflect.Type values.
package typecache

import (
	"reflect"
	"sync"
)

// Cache memoizes a pure function of a reflect.Type. Entries are never
// cleared, but since types are statically created throughout the lifetime of
// the process, the cache consumes a negligible amount of memory.
//
// Cache is safe for concurrent use. A race to populate the same entry runs
// the compute function more than once; compute must be pure so that the
// duplicate computation is harmless.
type Cache[V any] struct {
	compute func(reflect.Type) V
	entries sync.Map // reflect.Type -> V
}

// New returns a Cache memoizing compute.
func New[V any](compute func(reflect.Type) V) *Cache[V] {
	return &Cache[V]{compute: compute}
}

// Get returns the cached value for t, computing it on first use.
func (c *Cache[V]) Get(t reflect.Type) V {
	if v, ok := c.entries.Load(t); ok {
		return v.(V)
	}
	v, _ := c.entries.LoadOrStore(t, c.compute(t))
	return v.(V)
}
