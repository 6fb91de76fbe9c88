package sig

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// DebugFlags selects the events logged by a Debug signal.
type DebugFlags uint32

const (
	DebugCompute DebugFlags = 1 << iota
	DebugWatch
	DebugRemoveWatcher
	DebugChange

	DebugAll = DebugCompute | DebugWatch | DebugRemoveWatcher | DebugChange
)

func (f DebugFlags) Has(other DebugFlags) bool {
	return f&other == other
}

// Debug logs reads, watcher registrations and changes of its source.
type Debug[T any] struct {
	source Signal[T]
	name   string
	flags  DebugFlags
	logger log.FieldLogger

	upstream *upstream
}

// NewDebug logs through the standard logrus logger.
func NewDebug[T any](s Signal[T], flags DebugFlags) *Debug[T] {
	return NewDebugWithLogger(s, flags, log.StandardLogger())
}

func NewDebugWithLogger[T any](s Signal[T], flags DebugFlags, logger log.FieldLogger) *Debug[T] {
	d := &Debug[T]{
		source: s,
		name:   fmt.Sprintf("%T", s),
		flags:  flags,
		logger: logger,
	}
	d.upstream = attachUpstream(d)

	if flags.Has(DebugChange) {
		name := d.name
		d.upstream.subscribe(func() Guard {
			return s.Watch(func(ctx Context[T]) {
				entry := logger.WithFields(log.Fields{"signal": name, "value": ctx.Value})
				if !ctx.Metadata.IsEmpty() {
					entry = entry.WithField("metadata", ctx.Metadata.String())
				}
				entry.Info("signal changed")
			})
		})
	}

	return d
}

func (d *Debug[T]) Get() T {
	v := d.source.Get()

	if d.flags.Has(DebugCompute) {
		d.logger.WithFields(log.Fields{"signal": d.name, "value": v}).Debug("signal computed")
	}
	return v
}

// Watch registers fn on the source. The returned guard keeps d, and with it
// the change logger, alive.
func (d *Debug[T]) Watch(fn func(Context[T])) Guard {
	guard := d.source.Watch(fn)

	if d.flags.Has(DebugWatch) {
		d.logger.WithField("signal", d.name).Debug("watcher registered")
	}

	return OnRelease(func() {
		guard.Release()

		if d.flags.Has(DebugRemoveWatcher) {
			d.logger.WithField("signal", d.name).Debug("watcher removed")
		}
	})
}
