// Package sim provides the core simulation engine for stovesim.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - job.go: Job inputs (arrival, prep, cook) and the timestamps the engine fills in
//   - scheduler.go / queue.go: the two admission orders (SJF heap, FCFS queue)
//   - simulator.go: the step loop, contention policy and collision accounting
//
// # Model
//
// One stove, one timeline. Each step where the stove is idle, up to
// RunConfig.NumWorkers jobs are popped from the scheduler. With the semaphore
// on, the first takes the stove and the rest are requeued; with it off, all of
// them take the stove at once and every extra job counts as a collision.
// Runs are synchronous and fully deterministic for a given input.
//
// # Sub-packages
//
//   - sim/workload/: seeded job generation and built-in scenarios
//   - sim/trace/: dispatch-decision recording
//   - sim/report/: CSV/JSON writers and the text timeline
package sim
