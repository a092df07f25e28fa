// Package trace provides dispatch-decision recording for stove contention analysis.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// DispatchRecord captures one idle-stove step: which jobs the workers popped,
// which of them actually took the stove, and which were handed back.
type DispatchRecord struct {
	Clock      float64
	Contenders []int // job IDs popped this step, in pop order
	Dispatched []int // job IDs placed on the stove
	Requeued   []int // job IDs returned to the scheduler (exclusion only)
	Collision  bool  // more than one job on the stove at once
}
