package sig

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistinct(t *testing.T) {
	t.Run("drops repeated values", func(t *testing.T) {
		log := []int{}
		c := NewContainer(0)
		d := NewDistinct[int](c)
		d.Watch(func(ctx Context[int]) { log = append(log, ctx.Value) })

		for _, v := range []int{5, 5, 7, 7, 7, 5} {
			c.Set(v)
		}

		assert.Equal(t, []int{5, 7, 5}, log)
	})

	t.Run("first notification always forwards", func(t *testing.T) {
		log := []int{}
		c := NewContainer(3)
		d := NewDistinct[int](c)
		d.Watch(func(ctx Context[int]) { log = append(log, ctx.Value) })

		c.Set(3)
		assert.Equal(t, []int{3}, log)
	})

	t.Run("one record shared by every watcher", func(t *testing.T) {
		log := []string{}
		c := NewContainer(0)
		d := NewDistinct[int](c)

		d.Watch(func(Context[int]) { log = append(log, "a") })
		c.Set(1)
		d.Watch(func(Context[int]) { log = append(log, "b") })

		c.Set(1)
		c.Set(2)

		assert.Equal(t, []string{"a", "a", "b"}, log)
	})

	t.Run("subscribes upstream once", func(t *testing.T) {
		c := NewContainer(0)
		d := NewDistinct[int](c)

		d.Watch(func(Context[int]) {})
		d.Watch(func(Context[int]) {})

		assert.Equal(t, 1, c.watchers.Len())
	})

	t.Run("last watcher leaving drops the subscription", func(t *testing.T) {
		c := NewContainer(0)
		d := NewDistinct[int](c)

		a := d.Watch(func(Context[int]) {})
		b := d.Watch(func(Context[int]) {})

		a.Release()
		assert.True(t, d.feed.subscribed())

		b.Release()
		b.Release()
		assert.False(t, d.feed.subscribed())
		assert.Equal(t, 0, c.watchers.Len())
	})

	t.Run("custom equality", func(t *testing.T) {
		log := []string{}
		c := NewContainer("")
		d := NewDistinctFunc[string](c, strings.EqualFold)
		d.Watch(func(ctx Context[string]) { log = append(log, ctx.Value) })

		c.Set("Go")
		c.Set("GO")
		c.Set("rust")
		assert.Equal(t, []string{"Go", "rust"}, log)
	})

	t.Run("get calls through", func(t *testing.T) {
		c := NewContainer(4)
		assert.Equal(t, 4, NewDistinct[int](c).Get())
	})
}
