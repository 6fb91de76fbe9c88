package sig

import "github.com/AnatoleLucet/sig/v2/internal"

// WatcherManager is the registry behind every notifying signal. Watchers are
// called in registration order, from a snapshot taken before the first one
// runs. The zero value is ready to use.
type WatcherManager[T any] struct {
	registry internal.Registry
}

func NewWatcherManager[T any]() *WatcherManager[T] {
	return &WatcherManager[T]{}
}

// Register adds fn and returns its id, for use with Cancel.
func (m *WatcherManager[T]) Register(fn func(Context[T])) uint64 {
	id := m.registry.Register(func(v any, md internal.Metadata) {
		fn(Context[T]{Value: as[T](v), Metadata: md})
	})
	return uint64(id)
}

// RegisterGuard adds fn and returns a guard cancelling it.
func (m *WatcherManager[T]) RegisterGuard(fn func(Context[T])) Guard {
	id := m.Register(fn)
	return registryGuard(&m.registry, internal.WatcherID(id))
}

// Notify calls every registered watcher with v and md.
func (m *WatcherManager[T]) Notify(v T, md Metadata) {
	m.registry.Notify(v, md)
}

// NotifyContext is Notify for an existing context.
func (m *WatcherManager[T]) NotifyContext(ctx Context[T]) {
	m.registry.Notify(ctx.Value, ctx.Metadata)
}

// Cancel removes a watcher. Unknown ids are ignored.
func (m *WatcherManager[T]) Cancel(id uint64) {
	m.registry.Cancel(internal.WatcherID(id))
}

func (m *WatcherManager[T]) Len() int {
	return m.registry.Len()
}

func (m *WatcherManager[T]) IsEmpty() bool {
	return m.Len() == 0
}
