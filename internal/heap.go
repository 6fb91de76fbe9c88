package internal

import (
	"container/heap"
	"time"
)

// TimerHeap orders pending timers by deadline, then by scheduling order.
type TimerHeap struct {
	timers timerSlice
}

func NewHeap() *TimerHeap {
	return &TimerHeap{
		timers: make(timerSlice, 0),
	}
}

func (h *TimerHeap) Insert(t *Timer) {
	heap.Push(&h.timers, t)
}

// Remove takes t out of the heap. It reports false when t was not queued.
func (h *TimerHeap) Remove(t *Timer) bool {
	if t.index < 0 || t.index >= len(h.timers) || h.timers[t.index] != t {
		return false
	}

	heap.Remove(&h.timers, t.index)
	return true
}

// PopDue removes and returns the earliest timer due at now, or nil.
func (h *TimerHeap) PopDue(now time.Time) *Timer {
	if len(h.timers) == 0 || h.timers[0].deadline.After(now) {
		return nil
	}

	return heap.Pop(&h.timers).(*Timer)
}

// Next returns the earliest deadline.
func (h *TimerHeap) Next() (time.Time, bool) {
	if len(h.timers) == 0 {
		return time.Time{}, false
	}
	return h.timers[0].deadline, true
}

func (h *TimerHeap) Len() int {
	return len(h.timers)
}

type timerSlice []*Timer

func (s timerSlice) Len() int { return len(s) }

func (s timerSlice) Less(i, j int) bool {
	if s[i].deadline.Equal(s[j].deadline) {
		return s[i].seq < s[j].seq
	}
	return s[i].deadline.Before(s[j].deadline)
}

func (s timerSlice) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
	s[i].index = i
	s[j].index = j
}

func (s *timerSlice) Push(x any) {
	t := x.(*Timer)
	t.index = len(*s)
	*s = append(*s, t)
}

func (s *timerSlice) Pop() any {
	old := *s
	n := len(old)

	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*s = old[:n-1]

	return t
}
