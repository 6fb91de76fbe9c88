package sig

import (
	"context"
	"time"

	"k8s.io/utils/clock"

	"github.com/AnatoleLucet/sig/v2/internal"
)

// Timer is a pending callback. After Stop returns, the callback is
// guaranteed not to run.
type Timer interface {
	Stop() bool
}

// Scheduler runs callbacks after a delay, on the same goroutine as the rest
// of the signal graph.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) Timer
}

// Loop is the default Scheduler: a cooperative timer loop driven by Tick or
// Run on a single goroutine.
type Loop struct {
	loop *internal.Loop
}

type loopOptions struct {
	clock clock.Clock
}

type LoopOption func(*loopOptions)

// WithClock sets the time source of a loop. Tests typically pass a
// k8s.io/utils/clock/testing.FakeClock.
func WithClock(c clock.Clock) LoopOption {
	return func(o *loopOptions) { o.clock = c }
}

func NewLoop(opts ...LoopOption) *Loop {
	o := loopOptions{clock: clock.RealClock{}}
	for _, opt := range opts {
		opt(&o)
	}

	return &Loop{internal.NewLoop(o.clock)}
}

// CurrentLoop returns the loop bound to the calling goroutine. Under js/wasm
// there is a single loop for the whole program.
func CurrentLoop() *Loop {
	return &Loop{internal.CurrentLoop()}
}

// ReleaseCurrentLoop forgets the loop bound to the calling goroutine.
func ReleaseCurrentLoop() {
	internal.ReleaseLoop()
}

func (l *Loop) Schedule(d time.Duration, fn func()) Timer {
	return l.loop.Schedule(d, fn)
}

// Post queues fn to run on the loop. It is safe to call from any goroutine.
func (l *Loop) Post(fn func()) {
	l.loop.Post(fn)
}

// Tick runs posted callbacks and due timers, and returns how many ran.
func (l *Loop) Tick() int {
	return l.loop.Tick()
}

// Run blocks until ctx is done, running callbacks as they become due.
func (l *Loop) Run(ctx context.Context) error {
	return l.loop.Run(ctx)
}

// Pending returns the number of scheduled timers.
func (l *Loop) Pending() int {
	return l.loop.Pending()
}

// OnError registers a handler for panics raised by loop callbacks.
func (l *Loop) OnError(fn func(any)) {
	l.loop.OnError(fn)
}

func (l *Loop) Clock() clock.Clock {
	return l.loop.Clock()
}
