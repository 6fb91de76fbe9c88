package sig

import (
	"sync"
	"time"

	"github.com/AnatoleLucet/sig/v2/metrics"
)

// Throttle forwards the first notification of a burst immediately, then drops
// every notification until the throttle duration has elapsed. Dropped values
// are not replayed. Reads are not throttled.
type Throttle[T any] struct {
	source Signal[T]
	core   *throttleCore[T]

	feed *feed
}

type throttleCore[T any] struct {
	duration  time.Duration
	scheduler Scheduler

	mu         sync.Mutex
	suppressed bool
	timer      Timer

	watchers WatcherManager[T]
}

func NewThrottle[T any](s Signal[T], d time.Duration, scheduler Scheduler) *Throttle[T] {
	return &Throttle[T]{
		source: s,
		feed:   &feed{},
		core:   &throttleCore[T]{duration: d, scheduler: scheduler},
	}
}

// ThrottleOf throttles s on the loop of the calling goroutine.
func ThrottleOf[T any](s Signal[T], d time.Duration) *Throttle[T] {
	return NewThrottle(s, d, CurrentLoop())
}

func (t *Throttle[T]) Get() T {
	return t.source.Get()
}

// Watch registers fn. All watchers share a single source subscription, held
// while at least one of them is registered.
func (t *Throttle[T]) Watch(fn func(Context[T])) Guard {
	return t.feed.join(
		func() Guard { return t.source.Watch(t.core.receive) },
		func() Guard { return t.core.watchers.RegisterGuard(fn) },
	)
}

func (c *throttleCore[T]) receive(ctx Context[T]) {
	c.mu.Lock()
	if c.suppressed {
		c.mu.Unlock()
		metrics.ThrottleDroppedTotal.Inc()
		return
	}
	c.suppressed = true
	c.mu.Unlock()

	timer := c.scheduler.Schedule(c.duration, c.open)

	c.mu.Lock()
	if c.suppressed {
		c.timer = timer
	}
	c.mu.Unlock()

	c.watchers.NotifyContext(ctx)
}

func (c *throttleCore[T]) open() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.suppressed = false
	c.timer = nil
}
