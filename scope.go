package sig

import (
	"github.com/pkg/errors"

	"github.com/AnatoleLucet/sig/v2/internal"
)

// Scope releases a group of guards together. Scopes nest: disposing a scope
// disposes its children first.
type Scope struct {
	owner *internal.Owner
}

func NewScope() *Scope {
	return &Scope{internal.NewOwner()}
}

// Child creates a scope disposed along with s.
func (s *Scope) Child() *Scope {
	child := internal.NewOwner()
	s.owner.AddChild(child)

	return &Scope{child}
}

// Keep releases g when the scope is disposed, and returns it.
func (s *Scope) Keep(g Guard) Guard {
	s.owner.OnCleanup(g.Release)
	return g
}

// WatchIn registers fn on signal for as long as scope is not disposed.
func WatchIn[T any](scope *Scope, signal Signal[T], fn func(Context[T])) Guard {
	return scope.Keep(signal.Watch(fn))
}

// Run calls fn. If fn panics and the scope (or one of its parents) has an
// error handler, the handlers receive the panic and Run returns an error.
// Without handlers the panic propagates.
func (s *Scope) Run(fn func() error) (err error) {
	s.owner.Run(func() {
		defer func() {
			if r := recover(); r != nil {
				err = errors.Errorf("scope: recovered panic: %v", r)
				panic(r)
			}
		}()

		err = fn()
	})

	return err
}

// Dispose releases every kept guard and runs cleanups, children first. Later
// calls do nothing.
func (s *Scope) Dispose() { s.owner.Dispose() }

// OnCleanup registers fn to run once when the scope is disposed.
func (s *Scope) OnCleanup(fn func()) { s.owner.OnCleanup(fn) }

// OnError registers a handler for panics raised within Run.
func (s *Scope) OnError(fn func(any)) { s.owner.OnError(fn) }

func (s *Scope) Disposed() bool { return s.owner.Disposed() }
