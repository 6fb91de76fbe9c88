package sig

// WithMetadata attaches a typed value to the metadata of every notification
// of its source.
type WithMetadata[T, M any] struct {
	source   Signal[T]
	metadata M
}

// With wraps s so that its watchers find m in the notification metadata.
func With[T, M any](s Signal[T], m M) *WithMetadata[T, M] {
	return &WithMetadata[T, M]{source: s, metadata: m}
}

func (w *WithMetadata[T, M]) Get() T {
	return w.source.Get()
}

func (w *WithMetadata[T, M]) Watch(fn func(Context[T])) Guard {
	return w.source.Watch(func(ctx Context[T]) {
		fn(ContextWith(ctx, w.metadata))
	})
}
