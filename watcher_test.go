package sig

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWatcherManager(t *testing.T) {
	t.Run("notifies in registration order", func(t *testing.T) {
		log := []string{}
		var m WatcherManager[int]

		m.Register(func(ctx Context[int]) { log = append(log, fmt.Sprint("a:", ctx.Value)) })
		m.Register(func(ctx Context[int]) { log = append(log, fmt.Sprint("b:", ctx.Value)) })

		m.Notify(1, Metadata{})
		assert.Equal(t, []string{"a:1", "b:1"}, log)
	})

	t.Run("guards release once", func(t *testing.T) {
		log := []string{}
		m := NewWatcherManager[int]()

		g := m.RegisterGuard(func(Context[int]) { log = append(log, "a") })
		m.RegisterGuard(func(Context[int]) { log = append(log, "b") })

		g.Release()
		g.Release()

		m.Notify(0, Metadata{})
		assert.Equal(t, []string{"b"}, log)
		assert.Equal(t, 1, m.Len())
	})

	t.Run("guards release in any order", func(t *testing.T) {
		m := NewWatcherManager[int]()

		a := m.RegisterGuard(func(Context[int]) {})
		b := m.RegisterGuard(func(Context[int]) {})
		c := m.RegisterGuard(func(Context[int]) {})

		b.Release()
		c.Release()
		a.Release()

		assert.True(t, m.IsEmpty())
	})

	t.Run("cancel unknown id", func(t *testing.T) {
		m := NewWatcherManager[int]()
		assert.NotPanics(t, func() { m.Cancel(99) })
	})

	t.Run("zero value of pointer types", func(t *testing.T) {
		var got *int = new(int)
		m := NewWatcherManager[*int]()
		m.Register(func(ctx Context[*int]) { got = ctx.Value })

		m.Notify(nil, Metadata{})
		assert.Nil(t, got)
	})
}

func TestGuards(t *testing.T) {
	t.Run("combined guards release all", func(t *testing.T) {
		log := []string{}

		g := Guards(
			OnRelease(func() { log = append(log, "a") }),
			nil,
			OnRelease(func() { log = append(log, "b") }),
		)

		g.Release()
		g.Release()
		assert.Equal(t, []string{"a", "b"}, log)
	})
}
