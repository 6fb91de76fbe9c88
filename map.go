package sig

// Map applies a pure function to every value of its source. Nothing is
// cached: Get calls through to the source each time.
type Map[T, U any] struct {
	source Signal[T]
	f      func(T) U
}

func NewMap[T, U any](s Signal[T], f func(T) U) *Map[T, U] {
	return &Map[T, U]{source: s, f: f}
}

func (m *Map[T, U]) Get() U {
	return m.f(m.source.Get())
}

// Watch forwards every source notification through f, keeping its metadata.
func (m *Map[T, U]) Watch(fn func(Context[U])) Guard {
	return m.source.Watch(func(ctx Context[T]) {
		fn(MapContext(ctx, m.f))
	})
}
