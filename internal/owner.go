package internal

import (
	"iter"
	"slices"
	"sync"
)

// Owner collects cleanups and child owners, and routes recovered panics to
// its catchers.
type Owner struct {
	mu sync.Mutex

	// cleanup functions to be called when the owner is disposed
	cleanups []func()

	// panic handlers
	catchers []func(any)

	disposed bool

	parent       *Owner
	prevSibling  *Owner
	nextSibling  *Owner
	childrenHead *Owner
}

func NewOwner() *Owner {
	return &Owner{
		cleanups: make([]func(), 0),
	}
}

// Run calls fn. A panic raised by fn is handed to the catchers of the owner,
// or of its closest ancestor that has some. It propagates when none do.
func (o *Owner) Run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			catchers := o.findCatchers()
			if len(catchers) == 0 {
				panic(r)
			}

			for _, catcher := range catchers {
				catcher(r)
			}
		}
	}()

	fn()
}

func (o *Owner) findCatchers() []func(any) {
	for owner := o; owner != nil; owner = owner.parent {
		owner.mu.Lock()
		catchers := slices.Clone(owner.catchers)
		owner.mu.Unlock()

		if len(catchers) > 0 {
			return catchers
		}
	}
	return nil
}

func (parent *Owner) AddChild(child *Owner) {
	parent.mu.Lock()
	defer parent.mu.Unlock()

	child.parent = parent
	child.prevSibling = nil
	child.nextSibling = parent.childrenHead

	if parent.childrenHead != nil {
		parent.childrenHead.prevSibling = child
	}

	parent.childrenHead = child
}

func (parent *Owner) removeChild(child *Owner) {
	parent.mu.Lock()
	defer parent.mu.Unlock()

	if child.prevSibling != nil {
		child.prevSibling.nextSibling = child.nextSibling
	} else if parent.childrenHead == child {
		parent.childrenHead = child.nextSibling
	}
	if child.nextSibling != nil {
		child.nextSibling.prevSibling = child.prevSibling
	}

	child.prevSibling = nil
	child.nextSibling = nil
}

func (n *Owner) Children() iter.Seq[*Owner] {
	return func(yield func(*Owner) bool) {
		n.mu.Lock()
		child := n.childrenHead
		n.mu.Unlock()

		for child != nil {
			next := child.nextSibling
			if !yield(child) {
				return
			}

			child = next
		}
	}
}

// Dispose disposes children first, then runs cleanups in registration order.
// Later calls do nothing.
func (n *Owner) Dispose() {
	n.mu.Lock()
	if n.disposed {
		n.mu.Unlock()
		return
	}
	n.disposed = true
	n.mu.Unlock()

	n.DisposeChildren()

	n.mu.Lock()
	cleanups := n.cleanups
	n.cleanups = nil
	n.mu.Unlock()

	for i := 0; i < len(cleanups); i++ {
		cleanups[i]()
	}

	if n.parent != nil {
		n.parent.removeChild(n)
	}
}

func (n *Owner) DisposeChildren() {
	for child := range n.Children() {
		child.Dispose()
	}

	n.mu.Lock()
	n.childrenHead = nil
	n.mu.Unlock()
}

func (n *Owner) Disposed() bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.disposed
}

// OnCleanup registers fn to run on Dispose. On an already disposed owner fn
// runs immediately.
func (n *Owner) OnCleanup(fn func()) {
	n.mu.Lock()
	if n.disposed {
		n.mu.Unlock()
		fn()
		return
	}
	n.cleanups = append(n.cleanups, fn)
	n.mu.Unlock()
}

func (n *Owner) OnError(fn func(any)) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.catchers = append(n.catchers, fn)
}
