package sig

import "sync"

// Container is the mutable leaf of a signal graph. Set and Handle notify every
// watcher synchronously, on the calling goroutine.
type Container[T any] struct {
	mu    sync.Mutex
	value T

	watchers WatcherManager[T]
}

// NewContainer creates your typical mutable cell.
func NewContainer[T any](initial T) *Container[T] {
	return &Container[T]{value: initial}
}

// Get returns the current value.
func (c *Container[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.value
}

// Set replaces the value and notifies watchers with empty metadata.
func (c *Container[T]) Set(v T) {
	c.SetWith(v, Metadata{})
}

// SetWith replaces the value and notifies watchers with md.
func (c *Container[T]) SetWith(v T, md Metadata) {
	c.mu.Lock()
	c.value = v
	c.mu.Unlock()

	c.watchers.Notify(v, md)
}

// Handle mutates the value in place and notifies watchers once.
func (c *Container[T]) Handle(fn func(*T)) {
	v := c.Get()
	fn(&v)

	c.Set(v)
}

func (c *Container[T]) Watch(fn func(Context[T])) Guard {
	return c.watchers.RegisterGuard(fn)
}
