package sig

import "sync"

// Dict is a map whose keys can be watched individually. Watchers of a key
// receive a pointer to its new value, or nil once it is removed.
type Dict[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*dictEntry[V]
}

type dictEntry[V any] struct {
	value    *V
	watchers WatcherManager[*V]
}

func NewDict[K comparable, V any]() *Dict[K, V] {
	return &Dict[K, V]{entries: make(map[K]*dictEntry[V])}
}

func (d *Dict[K, V]) Get(k K) (V, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if e, ok := d.entries[k]; ok && e.value != nil {
		return *e.value, true
	}

	var zero V
	return zero, false
}

func (d *Dict[K, V]) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := 0
	for _, e := range d.entries {
		if e.value != nil {
			n++
		}
	}
	return n
}

// Insert sets the value of k and notifies the watchers of k.
func (d *Dict[K, V]) Insert(k K, v V) {
	d.mu.Lock()
	e := d.entry(k)
	e.value = &v
	d.mu.Unlock()

	out := v
	e.watchers.Notify(&out, Metadata{})
}

// Remove deletes k. Watchers of k are notified with nil, unless k was absent.
func (d *Dict[K, V]) Remove(k K) (V, bool) {
	var old V

	d.mu.Lock()
	e, ok := d.entries[k]
	if !ok || e.value == nil {
		d.mu.Unlock()
		return old, false
	}
	old = *e.value
	e.value = nil
	if e.watchers.IsEmpty() {
		delete(d.entries, k)
	}
	d.mu.Unlock()

	e.watchers.Notify(nil, Metadata{})
	return old, true
}

// Watch registers fn for changes of k, present or not yet. An absent key
// is forgotten once its last watcher is released.
func (d *Dict[K, V]) Watch(k K, fn func(Context[*V])) Guard {
	d.mu.Lock()
	defer d.mu.Unlock()

	e := d.entry(k)
	id := e.watchers.Register(fn)

	return OnRelease(func() {
		d.mu.Lock()
		defer d.mu.Unlock()

		e.watchers.Cancel(id)
		if e.value == nil && e.watchers.IsEmpty() && d.entries[k] == e {
			delete(d.entries, k)
		}
	})
}

func (d *Dict[K, V]) entry(k K) *dictEntry[V] {
	e, ok := d.entries[k]
	if !ok {
		e = &dictEntry[V]{}
		d.entries[k] = e
	}
	return e
}
