//go:build wasm

package internal

import "sync"

var once sync.Once
var globalLoop *Loop

// CurrentLoop returns the single loop of the program.
func CurrentLoop() *Loop {
	once.Do(func() {
		globalLoop = NewLoop(nil)
	})

	return globalLoop
}

// ReleaseLoop is a no-op: wasm programs have one loop for their lifetime.
func ReleaseLoop() {}
