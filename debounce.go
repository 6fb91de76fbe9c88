package sig

import (
	"sync"
	"time"

	"github.com/AnatoleLucet/sig/v2/metrics"
)

// Debounce forwards a notification only once its source has been quiet for
// the debounce duration. Reads are not debounced.
type Debounce[T any] struct {
	source Signal[T]
	core   *debounceCore[T]

	feed *feed
}

type debounceCore[T any] struct {
	duration  time.Duration
	scheduler Scheduler

	mu         sync.Mutex
	pending    Timer
	generation uint64

	watchers WatcherManager[T]
}

func NewDebounce[T any](s Signal[T], d time.Duration, scheduler Scheduler) *Debounce[T] {
	return &Debounce[T]{
		source: s,
		feed:   &feed{},
		core:   &debounceCore[T]{duration: d, scheduler: scheduler},
	}
}

// DebounceOf debounces s on the loop of the calling goroutine.
func DebounceOf[T any](s Signal[T], d time.Duration) *Debounce[T] {
	return NewDebounce(s, d, CurrentLoop())
}

func (d *Debounce[T]) Get() T {
	return d.source.Get()
}

// Watch registers fn. All watchers share a single source subscription, held
// while at least one of them is registered.
func (d *Debounce[T]) Watch(fn func(Context[T])) Guard {
	return d.feed.join(
		func() Guard { return d.source.Watch(d.core.receive) },
		func() Guard { return d.core.watchers.RegisterGuard(fn) },
	)
}

func (c *debounceCore[T]) receive(ctx Context[T]) {
	c.mu.Lock()
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
		metrics.DebounceSupersededTotal.Inc()
	}
	c.generation++
	gen := c.generation
	c.mu.Unlock()

	timer := c.scheduler.Schedule(c.duration, func() { c.fire(gen, ctx) })

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		// superseded while scheduling
		timer.Stop()
		return
	}
	c.pending = timer
}

func (c *debounceCore[T]) fire(gen uint64, ctx Context[T]) {
	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		return
	}
	c.pending = nil
	c.mu.Unlock()

	c.watchers.NotifyContext(ctx)
}
