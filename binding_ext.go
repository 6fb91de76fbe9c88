package sig

import (
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

type SignedNumber interface {
	constraints.Signed | constraints.Float
}

// Toggle flips a boolean binding.
func Toggle(b Binding[bool]) {
	b.Handle(func(v *bool) { *v = !*v })
}

// Not returns the negation of b. Writing to it writes the negated value to b.
func Not(b Binding[bool]) Binding[bool] {
	return Mapping(b,
		func(v bool) bool { return !v },
		func(src Binding[bool], v bool) { src.Set(!v) },
	)
}

// Then yields &ifTrue while b is true and nil otherwise. Writing a non-nil
// value sets b to true, writing nil sets it to false.
func Then[T any](b Binding[bool], ifTrue T) Binding[*T] {
	return Mapping(b,
		func(v bool) *T {
			if !v {
				return nil
			}
			out := ifTrue
			return &out
		},
		func(src Binding[bool], v *T) { src.Set(v != nil) },
	)
}

// ThenSome is an alias of Then.
func ThenSome[T any](b Binding[bool], ifTrue T) Binding[*T] {
	return Then(b, ifTrue)
}

// Select yields ifTrue or ifFalse depending on b. Writing ifTrue sets b to
// true, writing anything else sets it to false.
func Select[T comparable](b Binding[bool], ifTrue, ifFalse T) Binding[T] {
	return Mapping(b,
		func(v bool) T {
			if v {
				return ifTrue
			}
			return ifFalse
		},
		func(src Binding[bool], v T) { src.Set(v == ifTrue) },
	)
}

func Increment[T Number](b Binding[T], n T) {
	b.Handle(func(v *T) { *v += n })
}

func Decrement[T Number](b Binding[T], n T) {
	b.Handle(func(v *T) { *v -= n })
}

// Negate returns a two-way binding holding -b.
func Negate[T SignedNumber](b Binding[T]) Binding[T] {
	return Mapping(b,
		func(v T) T { return -v },
		func(src Binding[T], v T) { src.Set(-v) },
	)
}

func IsPositive[T SignedNumber](b Binding[T]) Binding[bool] {
	return b.Condition(func(v T) bool { return v > 0 })
}

func IsNegative[T SignedNumber](b Binding[T]) Binding[bool] {
	return b.Condition(func(v T) bool { return v < 0 })
}

func IsZero[T Number](b Binding[T]) Binding[bool] {
	return b.Condition(func(v T) bool { return v == 0 })
}

// Within returns a binding ignoring writes outside [lo, hi].
func Within[T cmp.Ordered](b Binding[T], lo, hi T) Binding[T] {
	return b.Filter(func(v T) bool { return v >= lo && v <= hi })
}

// UnwrapOrElse yields *b, or def() when b is nil. Writes store a pointer to
// the written value.
func UnwrapOrElse[T any](b Binding[*T], def func() T) Binding[T] {
	return Mapping(b,
		func(v *T) T {
			if v == nil {
				return def()
			}
			return *v
		},
		func(src Binding[*T], v T) { src.Set(&v) },
	)
}

func UnwrapOr[T any](b Binding[*T], def T) Binding[T] {
	return UnwrapOrElse(b, func() T { return def })
}

func UnwrapOrDefault[T any](b Binding[*T]) Binding[T] {
	return UnwrapOrElse(b, func() T {
		var zero T
		return zero
	})
}

// SomeEqualTo reports whether b points to a value equal to v. Writing true
// points b at v; writing false does nothing.
func SomeEqualTo[T comparable](b Binding[*T], v T) Binding[bool] {
	return Mapping(b,
		func(cur *T) bool { return cur != nil && *cur == v },
		func(src Binding[*T], ok bool) {
			if ok {
				out := v
				src.Set(&out)
			}
		},
	)
}

// Push appends values to a slice binding, notifying once.
func Push[T any](b Binding[[]T], values ...T) {
	b.Handle(func(s *[]T) { *s = append(slices.Clip(*s), values...) })
}

// Pop removes the last element. An empty slice is left untouched and
// watchers are not notified.
func Pop[T any](b Binding[[]T]) (T, bool) {
	var last T

	s := b.Get()
	if len(s) == 0 {
		return last, false
	}

	last = s[len(s)-1]
	b.Set(slices.Clone(s[:len(s)-1]))

	return last, true
}

// Insert puts v at index i. It panics when i is out of range.
func Insert[T any](b Binding[[]T], i int, v T) {
	b.Handle(func(s *[]T) { *s = slices.Insert(slices.Clone(*s), i, v) })
}

// Clear empties a slice binding. Clearing an empty slice does not notify.
func Clear[T any](b Binding[[]T]) {
	if len(b.Get()) == 0 {
		return
	}
	b.Set([]T{})
}

func Sort[T cmp.Ordered](b Binding[[]T]) {
	b.Handle(func(s *[]T) {
		*s = slices.Clone(*s)
		slices.Sort(*s)
	})
}

func SortFunc[T any](b Binding[[]T], compare func(x, y T) int) {
	b.Handle(func(s *[]T) {
		*s = slices.Clone(*s)
		slices.SortFunc(*s, compare)
	})
}

// Append concatenates suffix to a string binding.
func Append(b Binding[string], suffix string) {
	b.Handle(func(s *string) { *s += suffix })
}
