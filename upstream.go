package sig

import (
	"runtime"
	"sync"
)

// upstream is a subscription to a source made at most once. It is released
// when the handle it is attached to becomes unreachable.
type upstream struct {
	once sync.Once

	mu       sync.Mutex
	guard    Guard
	released bool
}

// attachUpstream ties the release of u to the collection of handle. Nothing
// reachable from u may point back to handle.
func attachUpstream[H any](handle *H) *upstream {
	u := &upstream{}
	runtime.AddCleanup(handle, func(u *upstream) { u.release() }, u)
	return u
}

func (u *upstream) subscribe(watch func() Guard) {
	u.once.Do(func() {
		g := watch()

		u.mu.Lock()
		if u.released {
			u.mu.Unlock()
			g.Release()
			return
		}
		u.guard = g
		u.mu.Unlock()
	})
}

func (u *upstream) release() {
	u.mu.Lock()
	u.released = true
	g := u.guard
	u.guard = nil
	u.mu.Unlock()

	if g != nil {
		g.Release()
	}
}

// feed shares one source subscription among downstream watchers. The source
// is subscribed to when the first watcher joins and released when the last
// one leaves.
type feed struct {
	mu      sync.Mutex
	members int
	guard   Guard
}

// join registers a downstream watcher through register, subscribing to the
// source first if needed. The returned guard releases both.
func (f *feed) join(subscribe func() Guard, register func() Guard) Guard {
	f.mu.Lock()
	f.members++
	if f.members == 1 {
		f.guard = subscribe()
	}
	f.mu.Unlock()

	return Guards(register(), OnRelease(f.leave))
}

func (f *feed) leave() {
	f.mu.Lock()
	f.members--
	var g Guard
	if f.members == 0 {
		g, f.guard = f.guard, nil
	}
	f.mu.Unlock()

	if g != nil {
		g.Release()
	}
}

func (f *feed) subscribed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.guard != nil
}
