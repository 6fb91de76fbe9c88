package sig

// Binding is a two-way handle over a Container or a Mapping. Copying a
// Binding yields another handle to the same underlying value.
type Binding[T any] struct {
	impl CustomBinding[T]
}

// NewBinding creates a binding backed by a new Container.
func NewBinding[T any](initial T) Binding[T] {
	return Binding[T]{impl: NewContainer(initial)}
}

// Custom wraps any CustomBinding implementation.
func Custom[T any](c CustomBinding[T]) Binding[T] {
	if b, ok := c.(Binding[T]); ok {
		return b
	}
	return Binding[T]{impl: c}
}

func (b Binding[T]) Get() T {
	return b.impl.Get()
}

func (b Binding[T]) Set(v T) {
	b.impl.Set(v)
}

func (b Binding[T]) Watch(fn func(Context[T])) Guard {
	return b.impl.Watch(fn)
}

// Handle mutates the value in place and writes it back, notifying once.
func (b Binding[T]) Handle(fn func(*T)) {
	v := b.impl.Get()
	fn(&v)
	b.impl.Set(v)
}

// Filter returns a binding that ignores writes failing pred.
func (b Binding[T]) Filter(pred func(T) bool) Binding[T] {
	return Mapping(b,
		func(v T) T { return v },
		func(src Binding[T], v T) {
			if pred(v) {
				src.Set(v)
			}
		},
	)
}

// Condition returns a read-only binding reporting whether pred holds.
func (b Binding[T]) Condition(pred func(T) bool) Binding[bool] {
	return Mapping(b, pred, func(Binding[T], bool) {})
}

// Computed erases the binding into a read-only Computed.
func (b Binding[T]) Computed() Computed[T] {
	return NewComputed[T](b)
}

// Mapping derives a binding from src. Reads apply get to the current source
// value; writes call set, which is expected to write src.
func Mapping[T, U any](src Binding[T], get func(T) U, set func(Binding[T], U)) Binding[U] {
	return Binding[U]{impl: &mapping[T, U]{src: src, get: get, set: set}}
}

type mapping[T, U any] struct {
	src Binding[T]
	get func(T) U
	set func(Binding[T], U)
}

func (m *mapping[T, U]) Get() U {
	return m.get(m.src.Get())
}

func (m *mapping[T, U]) Set(v U) {
	m.set(m.src, v)
}

func (m *mapping[T, U]) Watch(fn func(Context[U])) Guard {
	return m.src.Watch(func(ctx Context[T]) {
		fn(MapContext(ctx, m.get))
	})
}

// EqualTo returns a read-only binding reporting whether b equals v.
func EqualTo[T comparable](b Binding[T], v T) Binding[bool] {
	return b.Condition(func(cur T) bool { return cur == v })
}
