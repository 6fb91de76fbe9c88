package sig

import (
	"fmt"
	"reflect"

	"github.com/AnatoleLucet/sig/v2/internal"
)

// Metadata is a side channel of typed annotations attached to a
// notification. It holds at most one value per type and is never modified in
// place.
type Metadata = internal.Metadata

// Context is what watchers receive: the new value and its metadata.
type Context[T any] struct {
	Value    T
	Metadata Metadata
}

func NewContext[T any](v T) Context[T] {
	return Context[T]{Value: v}
}

// ContextWith returns a copy of ctx carrying m in its metadata.
func ContextWith[T, M any](ctx Context[T], m M) Context[T] {
	ctx.Metadata = WithValue(ctx.Metadata, m)
	return ctx
}

// MapContext transforms the value of ctx, keeping its metadata.
func MapContext[T, U any](ctx Context[T], f func(T) U) Context[U] {
	return Context[U]{Value: f(ctx.Value), Metadata: ctx.Metadata}
}

// WithValue returns a copy of md holding v. A previous value of the same type
// is replaced in the copy only.
func WithValue[M any](md Metadata, v M) Metadata {
	return md.WithType(reflect.TypeFor[M](), v)
}

// Lookup returns the value of type M held by md, if any.
func Lookup[M any](md Metadata) (M, bool) {
	v, ok := md.Lookup(reflect.TypeFor[M]())
	if !ok {
		var zero M
		return zero, false
	}

	return as[M](v), true
}

// MustGet is like Lookup but panics when md holds no value of type M.
func MustGet[M any](md Metadata) M {
	v, ok := Lookup[M](md)
	if !ok {
		panic(fmt.Sprintf("sig: metadata holds no value of type %s", reflect.TypeFor[M]()))
	}

	return v
}
