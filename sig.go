// Package sig provides observable values ("signals") that can be read,
// combined, transformed and watched for changes, plus two-way bindings whose
// writes propagate back to their source.
//
// Every watcher registration returns a Guard. Watchers stay registered until
// the guard is released: there is no automatic unsubscription when a guard is
// dropped. Use a Scope to release many guards at once.
package sig

import (
	"sync"

	"github.com/AnatoleLucet/sig/v2/internal"
)

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

// Signal is anything that produces a current value and notifies watchers
// when it changes.
type Signal[T any] interface {
	// Get computes the current value.
	Get() T
	// Watch registers fn for change notifications until the returned guard is released.
	Watch(fn func(Context[T])) Guard
}

// CustomBinding is a Signal that can also be written to.
type CustomBinding[T any] interface {
	Signal[T]
	Set(T)
}

// Guard revokes a watcher registration. Release is idempotent.
type Guard interface {
	Release()
}

type guard struct {
	once sync.Once
	fn   func()
}

func (g *guard) Release() {
	g.once.Do(g.fn)
}

// OnRelease returns a guard calling fn the first time it is released.
func OnRelease(fn func()) Guard {
	return &guard{fn: fn}
}

// Guards combines guards into one releasing all of them in order.
func Guards(gs ...Guard) Guard {
	return OnRelease(func() {
		for _, g := range gs {
			if g != nil {
				g.Release()
			}
		}
	})
}

type nopGuard struct{}

func (nopGuard) Release() {}

// NopGuard is returned by signals that never notify.
func NopGuard() Guard {
	return nopGuard{}
}

func registryGuard(r *internal.Registry, id internal.WatcherID) Guard {
	return OnRelease(func() { r.Cancel(id) })
}
