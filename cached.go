package sig

import "sync"

// Cached memoizes the value of its source. The cache is filled on the first
// Get, and overwritten by every value the source notifies, so once the source
// has fired Get never calls through to it again.
type Cached[T any] struct {
	source Signal[T]
	cache  *cache[T]

	upstream *upstream
}

type cache[T any] struct {
	mu    sync.Mutex
	value T
	ok    bool
}

func (c *cache[T]) load() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.value, c.ok
}

func (c *cache[T]) store(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value = v
	c.ok = true
}

// NewCached subscribes to s right away. The subscription lives as long as the
// returned handle is reachable.
func NewCached[T any](s Signal[T]) *Cached[T] {
	c := &Cached[T]{source: s, cache: &cache[T]{}}
	c.upstream = attachUpstream(c)

	store := c.cache
	c.upstream.subscribe(func() Guard {
		return s.Watch(func(ctx Context[T]) { store.store(ctx.Value) })
	})

	return c
}

func (c *Cached[T]) Get() T {
	if v, ok := c.cache.load(); ok {
		return v
	}

	v := c.source.Get()
	c.cache.store(v)

	return v
}

// Watch delegates to the source: notifications are not affected by caching.
func (c *Cached[T]) Watch(fn func(Context[T])) Guard {
	return c.source.Watch(fn)
}
