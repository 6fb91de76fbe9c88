//go:build !wasm

package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

var loops sync.Map

// CurrentLoop returns the loop bound to the calling goroutine, creating it on
// first use.
func CurrentLoop() *Loop {
	gid := getGID()

	if l, ok := loops.Load(gid); ok {
		return l.(*Loop)
	}

	l, _ := loops.LoadOrStore(gid, NewLoop(nil))
	return l.(*Loop)
}

// ReleaseLoop forgets the loop of the calling goroutine.
func ReleaseLoop() {
	loops.Delete(getGID())
}

func getGID() int64 {
	return goid.Get()
}
