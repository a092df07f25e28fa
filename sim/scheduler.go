package sim

import (
	"container/heap"
	"fmt"
)

// Scheduler orders admitted jobs for dispatch to the stove.
// Both implementations are non-preemptive: a popped job that gets dispatched
// is never handed back.
type Scheduler interface {
	// Push admits a job that has reached its ready time.
	Push(j *Job)
	// Pop removes and returns the highest-priority job, or nil if none is admitted.
	Pop() *Job
	// Requeue returns a popped but undispatched job to the head of its priority class.
	Requeue(j *Job)
	// Len returns the number of admitted jobs waiting.
	Len() int
}

// SJFScheduler selects the admitted job with the smallest CookTime,
// then the lowest ID for determinism. Admission order never affects selection.
// Warning: SJF can starve long jobs under sustained load.
type SJFScheduler struct {
	h jobHeap
}

// Push admits a job into the priority heap.
func (s *SJFScheduler) Push(j *Job) {
	if j == nil {
		panic("SJFScheduler.Push: job must not be nil")
	}
	heap.Push(&s.h, j)
}

// Pop removes the shortest job, or returns nil if empty.
func (s *SJFScheduler) Pop() *Job {
	if s.h.Len() == 0 {
		return nil
	}
	return heap.Pop(&s.h).(*Job)
}

// Requeue is Push: the heap key alone decides the front position.
func (s *SJFScheduler) Requeue(j *Job) {
	s.Push(j)
}

// Len returns the number of admitted jobs waiting.
func (s *SJFScheduler) Len() int {
	return s.h.Len()
}

// jobHeap implements heap.Interface ordered by (CookTime, ID).
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type jobHeap []*Job

func (h jobHeap) Len() int { return len(h) }
func (h jobHeap) Less(i, j int) bool {
	if h[i].CookTime != h[j].CookTime {
		return h[i].CookTime < h[j].CookTime
	}
	return h[i].ID < h[j].ID
}
func (h jobHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *jobHeap) Push(x any) {
	*h = append(*h, x.(*Job))
}

func (h *jobHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]
	return item
}

// ValidSchedulers is the set of recognized scheduler names.
// Shared by RunConfig.Validate() and NewScheduler() to avoid duplication.
var ValidSchedulers = map[string]bool{"": true, "fcfs": true, "sjf": true}

// IsValidScheduler returns true if name is a recognized scheduler.
func IsValidScheduler(name string) bool {
	return ValidSchedulers[name]
}

// NewScheduler creates a Scheduler by name.
// Valid names: "fcfs" (default), "sjf".
// Empty string defaults to FCFSScheduler (for CLI flag default compatibility).
// Panics on unrecognized names.
func NewScheduler(name string) Scheduler {
	if !IsValidScheduler(name) {
		panic(fmt.Sprintf("unknown scheduler %q", name))
	}
	switch name {
	case "", "fcfs":
		return &FCFSScheduler{}
	case "sjf":
		return &SJFScheduler{}
	default:
		panic(fmt.Sprintf("unhandled scheduler %q", name))
	}
}
