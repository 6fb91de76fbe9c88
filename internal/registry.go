package internal

import (
	"math"
	"sync"

	"github.com/google/btree"

	"github.com/AnatoleLucet/sig/v2/metrics"
)

type WatcherID uint64

type Watcher func(value any, md Metadata)

type entry struct {
	id WatcherID
	fn Watcher
}

func lessEntry(a, b entry) bool { return a.id < b.id }

// Registry keeps watchers ordered by registration. The zero value is ready to
// use.
type Registry struct {
	mu sync.Mutex

	// last id handed out, ids start at 1
	last WatcherID

	watchers *btree.BTreeG[entry]
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Register(fn Watcher) WatcherID {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.last == math.MaxUint64 {
		panic("sig: watcher id space exhausted")
	}
	r.last++

	if r.watchers == nil {
		r.watchers = btree.NewG(8, lessEntry)
	}
	r.watchers.ReplaceOrInsert(entry{id: r.last, fn: fn})

	metrics.WatchersRegisteredTotal.Inc()
	return r.last
}

// Cancel removes the watcher registered under id. It reports whether the
// watcher was still registered.
func (r *Registry) Cancel(id WatcherID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.watchers == nil {
		return false
	}

	if _, ok := r.watchers.Delete(entry{id: id}); !ok {
		return false
	}

	metrics.WatchersCancelledTotal.Inc()
	return true
}

// Notify calls every watcher registered at the time of the call, in
// registration order. The lock is not held while watchers run, so they may
// freely register, cancel or notify again.
func (r *Registry) Notify(value any, md Metadata) {
	snapshot := r.snapshot()

	for _, fn := range snapshot {
		fn(value, md)
	}

	metrics.NotificationsTotal.Add(float64(len(snapshot)))
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.watchers == nil {
		return 0
	}
	return r.watchers.Len()
}

func (r *Registry) snapshot() []Watcher {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.watchers == nil {
		return nil
	}

	fns := make([]Watcher, 0, r.watchers.Len())
	r.watchers.Ascend(func(e entry) bool {
		fns = append(fns, e.fn)
		return true
	})

	return fns
}
