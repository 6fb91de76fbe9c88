package internal

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"k8s.io/utils/clock"

	"github.com/AnatoleLucet/sig/v2/metrics"
)

// Loop is a single-threaded cooperative timer loop. Timers and posted tasks
// run on whichever goroutine calls Tick or Run. Post is the only method meant
// to be called from other goroutines; Schedule and Stop are guarded anyway.
type Loop struct {
	clock clock.Clock

	mu     sync.Mutex
	timers *TimerHeap
	seq    uint64

	posted *TaskQueue
	wake   chan struct{}

	owner   *Owner
	ticking atomic.Bool
}

type Timer struct {
	loop *Loop

	deadline time.Time
	seq      uint64
	fn       func()

	// position in the heap, -1 once popped or removed
	index int
}

func NewLoop(c clock.Clock) *Loop {
	if c == nil {
		c = clock.RealClock{}
	}

	return &Loop{
		clock:  c,
		timers: NewHeap(),
		posted: NewTaskQueue(),
		wake:   make(chan struct{}, 1),
		owner:  NewOwner(),
	}
}

func (l *Loop) Clock() clock.Clock {
	return l.clock
}

// Schedule runs fn once d has elapsed on the loop clock.
func (l *Loop) Schedule(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}

	l.mu.Lock()
	l.seq++
	t := &Timer{
		loop:     l,
		deadline: l.clock.Now().Add(d),
		seq:      l.seq,
		fn:       fn,
	}
	l.timers.Insert(t)
	l.mu.Unlock()

	metrics.TimersScheduledTotal.Inc()
	l.notifyWake()

	return t
}

// Stop cancels the timer. Once Stop returns the callback is guaranteed not to
// run. It reports whether the timer was still pending.
func (t *Timer) Stop() bool {
	l := t.loop

	l.mu.Lock()
	removed := l.timers.Remove(t)
	l.mu.Unlock()

	if removed {
		metrics.TimersStoppedTotal.Inc()
	}
	return removed
}

// Post queues fn to run on the next Tick.
func (l *Loop) Post(fn func()) {
	l.posted.Enqueue(fn)
	l.notifyWake()
}

// Tick runs posted tasks, then every timer due at the current clock time, in
// deadline order. It returns the number of callbacks run. Nested calls from
// within a callback do nothing.
func (l *Loop) Tick() int {
	if !l.ticking.CompareAndSwap(false, true) {
		return 0
	}
	defer l.ticking.Store(false)

	n := 0
	tasks := l.posted.Drain()
	defer func() {
		// A panic escaping Run leaves the unrun tasks for the next Tick.
		if len(tasks) > 0 {
			l.posted.Requeue(tasks)
		}
	}()

	for len(tasks) > 0 {
		fn := tasks[0]
		tasks = tasks[1:]

		l.owner.Run(fn)
		n++
	}

	now := l.clock.Now()
	for {
		l.mu.Lock()
		t := l.timers.PopDue(now)
		l.mu.Unlock()

		if t == nil {
			break
		}

		metrics.TimersFiredTotal.Inc()
		l.owner.Run(t.fn)
		n++
	}

	return n
}

// Pending returns the number of timers waiting to fire.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.timers.Len()
}

func (l *Loop) next() (time.Time, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.timers.Next()
}

// Run drives the loop until ctx is done or a callback panics without a
// registered error handler.
func (l *Loop) Run(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			metrics.LoopPanicsTotal.Inc()
			err = errors.Errorf("loop callback panicked: %v", r)
		}
	}()

	log.WithField("pending", l.Pending()).Debug("loop started")
	defer log.Debug("loop stopped")

	for {
		l.Tick()

		var fire <-chan time.Time
		var timer clock.Timer

		if deadline, ok := l.next(); ok {
			timer = l.clock.NewTimer(deadline.Sub(l.clock.Now()))
			fire = timer.C()
		}

		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return errors.WithMessage(ctx.Err(), "loop stopped")
		case <-fire:
		case <-l.wake:
			if timer != nil {
				timer.Stop()
			}
		}
	}
}

func (l *Loop) OnError(fn func(any)) {
	l.owner.OnError(func(r any) {
		metrics.LoopPanicsTotal.Inc()
		log.WithField("panic", fmt.Sprint(r)).Warn("loop callback panicked")
		fn(r)
	})
}

func (l *Loop) notifyWake() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}
