package sig

import (
	"sync"

	"github.com/AnatoleLucet/sig/v2/metrics"
)

// Distinct drops notifications equal to the last value it forwarded. One
// record is shared by every watcher of the same Distinct: each source
// notification is judged once, then forwarded to all of them or to none.
type Distinct[T any] struct {
	source Signal[T]
	core   *distinctCore[T]

	feed *feed
}

type distinctCore[T any] struct {
	equal func(a, b T) bool

	mu   sync.Mutex
	last T
	seen bool

	watchers WatcherManager[T]
}

func NewDistinct[T comparable](s Signal[T]) *Distinct[T] {
	return NewDistinctFunc(s, func(a, b T) bool { return a == b })
}

// NewDistinctFunc is NewDistinct with a custom equality.
func NewDistinctFunc[T any](s Signal[T], equal func(a, b T) bool) *Distinct[T] {
	return &Distinct[T]{
		source: s,
		feed:   &feed{},
		core:   &distinctCore[T]{equal: equal},
	}
}

func (d *Distinct[T]) Get() T {
	return d.source.Get()
}

func (d *Distinct[T]) Watch(fn func(Context[T])) Guard {
	return d.feed.join(
		func() Guard { return d.source.Watch(d.core.receive) },
		func() Guard { return d.core.watchers.RegisterGuard(fn) },
	)
}

func (c *distinctCore[T]) receive(ctx Context[T]) {
	c.mu.Lock()
	if c.seen && c.equal(c.last, ctx.Value) {
		c.mu.Unlock()
		metrics.DistinctSuppressedTotal.Inc()
		return
	}
	c.last = ctx.Value
	c.seen = true
	c.mu.Unlock()

	c.watchers.NotifyContext(ctx)
}
