package sig

import (
	"cmp"
	"sync"
)

type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip combines two signals into a signal of pairs.
type Zip[A, B any] struct {
	a Signal[A]
	b Signal[B]
}

func NewZip[A, B any](a Signal[A], b Signal[B]) *Zip[A, B] {
	return &Zip[A, B]{a: a, b: b}
}

func (z *Zip[A, B]) Get() Pair[A, B] {
	return Pair[A, B]{z.a.Get(), z.b.Get()}
}

// Watch subscribes to both sides. When one side fires, fn receives its new
// value paired with the last value seen from the other side, along with the
// metadata of the firing side. Both last values are seeded when Watch is
// called.
func (z *Zip[A, B]) Watch(fn func(Context[Pair[A, B]])) Guard {
	var mu sync.Mutex
	last := z.Get()

	ga := z.a.Watch(func(ctx Context[A]) {
		mu.Lock()
		last.First = ctx.Value
		p := last
		mu.Unlock()

		fn(Context[Pair[A, B]]{Value: p, Metadata: ctx.Metadata})
	})

	gb := z.b.Watch(func(ctx Context[B]) {
		mu.Lock()
		last.Second = ctx.Value
		p := last
		mu.Unlock()

		fn(Context[Pair[A, B]]{Value: p, Metadata: ctx.Metadata})
	})

	return Guards(ga, gb)
}

func zipWith[T, U any](a, b Signal[T], f func(T, T) U) *Map[Pair[T, T], U] {
	return NewMap(NewZip(a, b), func(p Pair[T, T]) U {
		return f(p.First, p.Second)
	})
}

func Add[T Number](a, b Signal[T]) *Map[Pair[T, T], T] {
	return zipWith(a, b, func(x, y T) T { return x + y })
}

func Sub[T Number](a, b Signal[T]) *Map[Pair[T, T], T] {
	return zipWith(a, b, func(x, y T) T { return x - y })
}

func Mul[T Number](a, b Signal[T]) *Map[Pair[T, T], T] {
	return zipWith(a, b, func(x, y T) T { return x * y })
}

// Div panics on integer division by zero, like the / operator.
func Div[T Number](a, b Signal[T]) *Map[Pair[T, T], T] {
	return zipWith(a, b, func(x, y T) T { return x / y })
}

func Max[T cmp.Ordered](a, b Signal[T]) *Map[Pair[T, T], T] {
	return zipWith(a, b, func(x, y T) T { return max(x, y) })
}

func Min[T cmp.Ordered](a, b Signal[T]) *Map[Pair[T, T], T] {
	return zipWith(a, b, func(x, y T) T { return min(x, y) })
}
