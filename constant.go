package sig

import "sync"

// Constant is a signal that never changes.
type Constant[T any] struct {
	value T
}

func NewConstant[T any](v T) Constant[T] {
	return Constant[T]{value: v}
}

func (c Constant[T]) Get() T {
	return c.value
}

// Watch never calls fn.
func (c Constant[T]) Watch(func(Context[T])) Guard {
	return NopGuard()
}

// Lazy is a constant computed on first read.
type Lazy[T any] struct {
	get func() T
}

func NewLazy[T any](compute func() T) Lazy[T] {
	return Lazy[T]{get: sync.OnceValue(compute)}
}

func (l Lazy[T]) Get() T {
	return l.get()
}

// Watch never calls fn.
func (l Lazy[T]) Watch(func(Context[T])) Guard {
	return NopGuard()
}
