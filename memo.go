package sig

import lru "github.com/hashicorp/golang-lru"

// Memo is a Map remembering the results of f for the most recent distinct
// inputs. f must be pure.
type Memo[T comparable, U any] struct {
	source Signal[T]
	f      func(T) U
	cache  *lru.Cache
}

// NewMemo memoizes up to size results of f.
func NewMemo[T comparable, U any](s Signal[T], f func(T) U, size int) *Memo[T, U] {
	cache, err := lru.New(size)
	if err != nil {
		panic(err.Error()) // Only errors on size <= 0.
	}

	return &Memo[T, U]{source: s, f: f, cache: cache}
}

func (m *Memo[T, U]) Get() U {
	return m.compute(m.source.Get())
}

func (m *Memo[T, U]) Watch(fn func(Context[U])) Guard {
	return m.source.Watch(func(ctx Context[T]) {
		fn(MapContext(ctx, m.compute))
	})
}

// Len returns the number of memoized results.
func (m *Memo[T, U]) Len() int {
	return m.cache.Len()
}

func (m *Memo[T, U]) compute(v T) U {
	if out, ok := m.cache.Get(v); ok {
		return out.(U)
	}

	out := m.f(v)
	m.cache.Add(v, out)

	return out
}
