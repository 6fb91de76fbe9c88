package sig

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScope(t *testing.T) {
	t.Run("dispose releases kept guards", func(t *testing.T) {
		calls := 0
		c := NewContainer(0)
		s := NewScope()

		WatchIn(s, Signal[int](c), func(Context[int]) { calls++ })
		c.Set(1)

		s.Dispose()
		c.Set(2)

		assert.Equal(t, 1, calls)
		assert.True(t, s.Disposed())
	})

	t.Run("children are disposed first", func(t *testing.T) {
		log := []string{}
		parent := NewScope()
		child := parent.Child()

		parent.OnCleanup(func() { log = append(log, "parent") })
		child.OnCleanup(func() { log = append(log, "child") })

		parent.Dispose()
		parent.Dispose()

		assert.Equal(t, []string{"child", "parent"}, log)
	})

	t.Run("run returns the function error", func(t *testing.T) {
		s := NewScope()
		err := s.Run(func() error { return errors.New("oops") })
		assert.EqualError(t, err, "oops")
	})

	t.Run("run recovers panics when handled", func(t *testing.T) {
		var caught any
		s := NewScope()
		s.OnError(func(r any) { caught = r })

		err := s.Run(func() error { panic("boom") })

		assert.Equal(t, "boom", caught)
		assert.EqualError(t, err, "scope: recovered panic: boom")
	})

	t.Run("unhandled panics propagate", func(t *testing.T) {
		s := NewScope()
		assert.PanicsWithValue(t, "boom", func() {
			_ = s.Run(func() error { panic("boom") })
		})
	})

	t.Run("parent handlers catch child panics", func(t *testing.T) {
		var caught any
		parent := NewScope()
		parent.OnError(func(r any) { caught = r })

		_ = parent.Child().Run(func() error { panic("boom") })
		assert.Equal(t, "boom", caught)
	})
}
