package sig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type user struct {
	Name string
	Age  int
}

func TestBinding(t *testing.T) {
	t.Run("get and set", func(t *testing.T) {
		b := NewBinding("a")
		b.Set("b")
		assert.Equal(t, "b", b.Get())
	})

	t.Run("copies share the value", func(t *testing.T) {
		a := NewBinding(1)
		b := a

		b.Set(2)
		assert.Equal(t, 2, a.Get())
	})

	t.Run("custom wraps any implementation", func(t *testing.T) {
		c := NewContainer(1)
		b := Custom[int](c)

		b.Set(5)
		assert.Equal(t, 5, c.Get())
	})

	t.Run("custom does not nest bindings", func(t *testing.T) {
		b := NewBinding(1)
		assert.Equal(t, b, Custom[int](b))
	})

	t.Run("handle on a mapping writes back once", func(t *testing.T) {
		log := []string{}
		u := NewBinding(user{Name: "ann", Age: 30})
		name := Mapping(u,
			func(u user) string { return u.Name },
			func(src Binding[user], name string) {
				src.Handle(func(u *user) { u.Name = name })
			},
		)
		u.Watch(func(ctx Context[user]) { log = append(log, ctx.Value.Name) })

		name.Handle(func(s *string) { *s += "ie" })

		assert.Equal(t, []string{"annie"}, log)
		assert.Equal(t, user{Name: "annie", Age: 30}, u.Get())
	})
}

func TestMapping(t *testing.T) {
	t.Run("reads are recomputed", func(t *testing.T) {
		calls := 0
		src := NewBinding(2)
		double := Mapping(src,
			func(v int) int { calls++; return v * 2 },
			func(src Binding[int], v int) { src.Set(v / 2) },
		)

		assert.Equal(t, 4, double.Get())
		assert.Equal(t, 4, double.Get())
		assert.Equal(t, 2, calls)
	})

	t.Run("set propagates one level up", func(t *testing.T) {
		srcLog := []int{}
		outLog := []int{}

		src := NewBinding(1)
		double := Mapping(src,
			func(v int) int { return v * 2 },
			func(src Binding[int], v int) { src.Set(v / 2) },
		)

		src.Watch(func(ctx Context[int]) { srcLog = append(srcLog, ctx.Value) })
		double.Watch(func(ctx Context[int]) { outLog = append(outLog, ctx.Value) })

		double.Set(10)

		assert.Equal(t, 5, src.Get())
		assert.Equal(t, []int{5}, srcLog)
		assert.Equal(t, []int{10}, outLog)
	})

	t.Run("struct field projection", func(t *testing.T) {
		u := NewBinding(user{Name: "ann", Age: 30})
		age := Mapping(u,
			func(u user) int { return u.Age },
			func(src Binding[user], age int) {
				v := src.Get()
				v.Age = age
				src.Set(v)
			},
		)

		age.Set(31)
		assert.Equal(t, user{Name: "ann", Age: 31}, u.Get())
	})

	t.Run("watch keeps metadata", func(t *testing.T) {
		var got Metadata
		c := NewContainer(1)
		out := Mapping(Custom[int](c), func(v int) int { return v }, func(Binding[int], int) {})
		out.Watch(func(ctx Context[int]) { got = ctx.Metadata })

		c.SetWith(2, WithValue(Metadata{}, origin("user")))
		assert.Equal(t, origin("user"), MustGet[origin](got))
	})
}

func TestFilter(t *testing.T) {
	t.Run("rejected writes are silent no-ops", func(t *testing.T) {
		calls := 0
		src := NewBinding(1)
		even := src.Filter(func(v int) bool { return v%2 == 0 })
		even.Watch(func(Context[int]) { calls++ })

		even.Set(3)
		assert.Equal(t, 1, src.Get())
		assert.Equal(t, 0, calls)

		even.Set(4)
		assert.Equal(t, 4, src.Get())
		assert.Equal(t, 1, calls)
	})
}

func TestCondition(t *testing.T) {
	t.Run("reflects the predicate", func(t *testing.T) {
		log := []bool{}
		n := NewBinding(5)
		positive := n.Condition(func(v int) bool { return v > 0 })
		positive.Watch(func(ctx Context[bool]) { log = append(log, ctx.Value) })

		assert.True(t, positive.Get())
		n.Set(-1)
		assert.False(t, positive.Get())
		assert.Equal(t, []bool{false}, log)
	})

	t.Run("is read-only", func(t *testing.T) {
		n := NewBinding(5)
		positive := n.Condition(func(v int) bool { return v > 0 })

		positive.Set(false)
		assert.Equal(t, 5, n.Get())
	})

	t.Run("equal to", func(t *testing.T) {
		text := NewBinding("hello")
		isHello := EqualTo(text, "hello")

		assert.True(t, isHello.Get())
		text.Set("bye")
		assert.False(t, isHello.Get())
	})
}
