package sig

// Computed is a read-only handle over any signal of T. It lets functions
// accept or store signals without naming their concrete composition type.
type Computed[T any] struct {
	signal Signal[T]
}

// NewComputed wraps s. Wrapping a Computed returns it unchanged.
func NewComputed[T any](s Signal[T]) Computed[T] {
	if c, ok := s.(Computed[T]); ok {
		return c
	}
	return Computed[T]{signal: s}
}

// ComputedConstant wraps a value that never changes.
func ComputedConstant[T any](v T) Computed[T] {
	return Computed[T]{signal: NewConstant(v)}
}

func (c Computed[T]) Get() T {
	return c.signal.Get()
}

func (c Computed[T]) Watch(fn func(Context[T])) Guard {
	return c.signal.Watch(fn)
}

// Clone returns another handle to the same underlying signal.
func (c Computed[T]) Clone() Computed[T] {
	return c
}
