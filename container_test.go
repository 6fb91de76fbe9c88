package sig

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainer(t *testing.T) {
	t.Run("get and set", func(t *testing.T) {
		c := NewContainer(0)
		assert.Equal(t, 0, c.Get())

		c.Set(10)
		assert.Equal(t, 10, c.Get())
	})

	t.Run("set notifies each watcher once", func(t *testing.T) {
		log := []int{}
		c := NewContainer(0)

		c.Watch(func(ctx Context[int]) { log = append(log, ctx.Value) })
		c.Watch(func(ctx Context[int]) { log = append(log, ctx.Value*10) })

		c.Set(1)
		assert.Equal(t, []int{1, 10}, log)
	})

	t.Run("set with metadata", func(t *testing.T) {
		var got Metadata
		c := NewContainer("")
		c.Watch(func(ctx Context[string]) { got = ctx.Metadata })

		c.SetWith("x", WithValue(Metadata{}, origin("user")))
		assert.Equal(t, origin("user"), MustGet[origin](got))
	})

	t.Run("handle notifies once", func(t *testing.T) {
		log := [][]int{}
		c := NewContainer([]int{1})
		c.Watch(func(ctx Context[[]int]) { log = append(log, ctx.Value) })

		c.Handle(func(v *[]int) {
			*v = append(*v, 2)
			*v = append(*v, 3)
		})

		assert.Equal(t, [][]int{{1, 2, 3}}, log)
	})

	t.Run("released watchers are not notified", func(t *testing.T) {
		calls := 0
		c := NewContainer(0)

		g := c.Watch(func(Context[int]) { calls++ })
		c.Set(1)
		g.Release()
		c.Set(2)

		assert.Equal(t, 1, calls)
	})

	t.Run("watchers can set during notification", func(t *testing.T) {
		log := []int{}
		c := NewContainer(0)

		c.Watch(func(ctx Context[int]) {
			log = append(log, ctx.Value)
			if ctx.Value < 3 {
				c.Set(ctx.Value + 1)
			}
		})

		c.Set(1)
		assert.Equal(t, []int{1, 2, 3}, log)
		assert.Equal(t, 3, c.Get())
	})

	t.Run("concurrent read/write", func(t *testing.T) {
		var wg sync.WaitGroup
		c := NewContainer(0)

		wg.Go(func() {
			c.Set(c.Get() + 1)
		})

		wg.Wait()
		assert.Equal(t, 1, c.Get())
	})
}
