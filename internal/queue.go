package internal

import (
	"slices"
	"sync"
)

// TaskQueue is a goroutine-safe FIFO of callbacks posted to a loop.
type TaskQueue struct {
	mu        sync.Mutex
	callbacks []func()
}

func NewTaskQueue() *TaskQueue {
	return &TaskQueue{
		callbacks: make([]func(), 0),
	}
}

func (q *TaskQueue) Enqueue(fn func()) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.callbacks = append(q.callbacks, fn)
}

// Drain empties the queue and returns what it held. Callbacks enqueued while
// the drained ones run land in the next Drain.
func (q *TaskQueue) Drain() []func() {
	q.mu.Lock()
	defer q.mu.Unlock()

	callbacks := q.callbacks
	q.callbacks = make([]func(), 0)

	return callbacks
}

// Requeue puts callbacks back at the front of the queue, ahead of anything
// enqueued since they were drained.
func (q *TaskQueue) Requeue(callbacks []func()) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.callbacks = append(slices.Clone(callbacks), q.callbacks...)
}

func (q *TaskQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.callbacks)
}
