package sig

import (
	"slices"
	"sync"
)

// Collection is an indexed sequence whose sub-ranges can be watched.
type Collection[T any] interface {
	Get(i int) (T, bool)
	Len() int
	// Watch calls fn with the elements of r each time the collection changes
	// and r, clamped to the current length, is not empty.
	Watch(r Range, fn func(Context[[]T])) Guard
}

type BoundKind int

const (
	Unbounded BoundKind = iota
	Included
	Excluded
)

// Bound is one end of a Range. The zero value is unbounded.
type Bound struct {
	Kind  BoundKind
	Index int
}

func IncludedBound(i int) Bound { return Bound{Kind: Included, Index: i} }
func ExcludedBound(i int) Bound { return Bound{Kind: Excluded, Index: i} }

// Range selects indexes of a collection. The zero value selects everything.
type Range struct {
	Start Bound
	End   Bound
}

// All is [0, len).
func All() Range { return Range{} }

// From is [start, len).
func From(start int) Range { return Range{Start: IncludedBound(start)} }

// To is [0, end).
func To(end int) Range { return Range{End: ExcludedBound(end)} }

// Span is [start, end).
func Span(start, end int) Range {
	return Range{Start: IncludedBound(start), End: ExcludedBound(end)}
}

// Through is [start, end].
func Through(start, end int) Range {
	return Range{Start: IncludedBound(start), End: IncludedBound(end)}
}

// Clamp resolves r against a collection of length n. It reports false when
// the result is empty or starts past n.
func (r Range) Clamp(n int) (start, end int, ok bool) {
	switch r.Start.Kind {
	case Included:
		start = r.Start.Index
	case Excluded:
		start = r.Start.Index + 1
	}

	switch r.End.Kind {
	case Included:
		end = min(r.End.Index+1, n)
	case Excluded:
		end = min(r.End.Index, n)
	default:
		end = n
	}

	if start < 0 || start >= n || start >= end {
		return 0, 0, false
	}
	return start, end, true
}

// List is a growable sequence. Each mutation notifies watchers once; a
// mutation that changes nothing does not notify.
type List[T any] struct {
	mu    sync.Mutex
	items []T

	watchers WatcherManager[[]T]
}

func NewList[T any](items ...T) *List[T] {
	return &List[T]{items: slices.Clone(items)}
}

func (l *List[T]) Get(i int) (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[i], true
}

func (l *List[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.items)
}

// Items returns a copy of the contents.
func (l *List[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()

	return slices.Clone(l.items)
}

func (l *List[T]) Push(v T) {
	l.mutate(func(items []T) ([]T, bool) {
		return append(items, v), true
	})
}

// Pop removes the last element. It reports false, without notifying, on an
// empty list.
func (l *List[T]) Pop() (T, bool) {
	var last T
	ok := false

	l.mutate(func(items []T) ([]T, bool) {
		if len(items) == 0 {
			return items, false
		}
		last, ok = items[len(items)-1], true
		return items[:len(items)-1], true
	})

	return last, ok
}

// Insert puts v at index i. It panics when i is out of range.
func (l *List[T]) Insert(i int, v T) {
	l.mutate(func(items []T) ([]T, bool) {
		return slices.Insert(items, i, v), true
	})
}

// Remove deletes the element at index i. It reports false, without
// notifying, when i is out of range.
func (l *List[T]) Remove(i int) (T, bool) {
	var removed T
	ok := false

	l.mutate(func(items []T) ([]T, bool) {
		if i < 0 || i >= len(items) {
			return items, false
		}
		removed, ok = items[i], true
		return slices.Delete(items, i, i+1), true
	})

	return removed, ok
}

// Clear empties the list. Clearing an empty list does not notify.
func (l *List[T]) Clear() {
	l.mutate(func(items []T) ([]T, bool) {
		if len(items) == 0 {
			return items, false
		}
		return items[:0], true
	})
}

func (l *List[T]) Watch(r Range, fn func(Context[[]T])) Guard {
	return l.watchers.RegisterGuard(func(ctx Context[[]T]) {
		start, end, ok := r.Clamp(len(ctx.Value))
		if !ok {
			return
		}
		fn(Context[[]T]{Value: slices.Clone(ctx.Value[start:end]), Metadata: ctx.Metadata})
	})
}

// mutate applies fn to a private copy of the items and, when fn reports a
// change, publishes the copy and notifies watchers with it.
func (l *List[T]) mutate(fn func([]T) ([]T, bool)) {
	if snapshot, changed := l.update(fn); changed {
		l.watchers.Notify(snapshot, Metadata{})
	}
}

func (l *List[T]) update(fn func([]T) ([]T, bool)) ([]T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	items, changed := fn(slices.Clone(l.items))
	if !changed {
		return nil, false
	}
	l.items = items

	return slices.Clone(items), true
}

// Slice adapts a plain slice to Collection. It never changes, so Watch calls
// fn once, right away, with the current range.
type Slice[T any] []T

func (s Slice[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(s) {
		var zero T
		return zero, false
	}
	return s[i], true
}

func (s Slice[T]) Len() int {
	return len(s)
}

func (s Slice[T]) Watch(r Range, fn func(Context[[]T])) Guard {
	if start, end, ok := r.Clamp(len(s)); ok {
		fn(NewContext(slices.Clone([]T(s[start:end]))))
	}
	return NopGuard()
}

// AnyCollection is a handle over any Collection of T.
type AnyCollection[T any] struct {
	collection Collection[T]
}

// NewAnyCollection wraps c. Wrapping an AnyCollection returns it unchanged.
func NewAnyCollection[T any](c Collection[T]) AnyCollection[T] {
	if a, ok := c.(AnyCollection[T]); ok {
		return a
	}
	return AnyCollection[T]{collection: c}
}

func (a AnyCollection[T]) Get(i int) (T, bool) {
	return a.collection.Get(i)
}

func (a AnyCollection[T]) Len() int {
	return a.collection.Len()
}

func (a AnyCollection[T]) IsEmpty() bool {
	return a.collection.Len() == 0
}

func (a AnyCollection[T]) Watch(r Range, fn func(Context[[]T])) Guard {
	return a.collection.Watch(r, fn)
}

// Clone returns another handle to the same underlying collection.
func (a AnyCollection[T]) Clone() AnyCollection[T] {
	return a
}
