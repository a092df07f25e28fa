// sim/simulator.go
package sim

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/stovesim/stovesim/sim/trace"
)

// Simulator is the core object that holds simulation time, stove state, and the step loop.
// There is one logical timeline; "workers" are a per-step fan-out of Pop attempts that
// models contention for the stove, not independent goroutines.
type Simulator struct {
	Clock  float64
	Config RunConfig
	// Jobs in caller order; the same pointers are returned in Result.Jobs.
	Jobs []*Job
	// pending holds jobs not yet admitted, ordered by EligibleAt then input order.
	pending []*Job
	// Scheduler holds admitted jobs that have not been dispatched.
	Scheduler Scheduler
	// Events is the chronological audit trail of job_start / job_finish.
	Events []Event
	// busyUntil is the instant the stove is released by the last dispatched job(s).
	busyUntil float64
	// Collisions counts extra jobs put on the stove in the same step (semaphore off only).
	Collisions     int
	PeakQueueDepth int
	StepCount      int
	// Trace records dispatch decisions when non-nil.
	Trace *trace.SimulationTrace

	ran bool
}

// Result is the plain-data output of one run, suitable for serialization.
type Result struct {
	Config         RunConfig              `json:"config"`
	Jobs           []*Job                 `json:"jobs"`
	Events         []Event                `json:"events"`
	Collisions     int                    `json:"collisions"`
	PeakQueueDepth int                    `json:"peak_queue_depth"`
	Steps          int                    `json:"steps"`
	Trace          *trace.SimulationTrace `json:"-"`
}

// NewSimulator validates cfg and jobs and prepares a run.
// Malformed input is reported here, before any simulated time passes.
// The jobs are mutated in place by Run.
func NewSimulator(cfg RunConfig, jobs []*Job) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid run config: %w", err)
	}
	if err := ValidateJobs(jobs); err != nil {
		return nil, fmt.Errorf("invalid jobs: %w", err)
	}

	// Input order is arbitrary; a stable sort keeps equal ready times in input order.
	pending := make([]*Job, len(jobs))
	copy(pending, jobs)
	sort.SliceStable(pending, func(a, b int) bool {
		return pending[a].EligibleAt() < pending[b].EligibleAt()
	})

	return &Simulator{
		Clock:     0,
		Config:    cfg,
		Jobs:      jobs,
		pending:   pending,
		Scheduler: NewScheduler(cfg.Scheduler),
		Events:    make([]Event, 0, 2*len(jobs)),
	}, nil
}

// Run validates, simulates and returns the result in one call.
func Run(cfg RunConfig, jobs []*Job) (*Result, error) {
	s, err := NewSimulator(cfg, jobs)
	if err != nil {
		return nil, err
	}
	return s.Run(), nil
}

// Run advances the clock until every job has finished.
// Panics if called twice or if an internal invariant breaks.
func (sim *Simulator) Run() *Result {
	if sim.ran {
		panic("Simulator.Run called twice")
	}
	sim.ran = true
	logrus.Infof("Starting simulation: %d jobs, scheduler=%q, workers=%d, semaphore=%v",
		len(sim.Jobs), sim.Config.Scheduler, sim.Config.NumWorkers, sim.Config.UseSemaphore)

	for {
		sim.admitReady()
		if sim.Clock < sim.busyUntil {
			panic(fmt.Sprintf("stove still busy at t=%v (until %v) at step boundary", sim.Clock, sim.busyUntil))
		}
		if sim.Scheduler.Len() > 0 {
			sim.Step()
			continue
		}
		if len(sim.pending) == 0 {
			break
		}
		// Idle stove, empty scheduler: jump to the next ready time.
		sim.Clock = sim.pending[0].EligibleAt()
	}

	sim.checkInvariants()
	logrus.Infof("[t=%g] Simulation ended after %d steps, collisions=%d", sim.Clock, sim.StepCount, sim.Collisions)

	return &Result{
		Config:         sim.Config,
		Jobs:           sim.Jobs,
		Events:         sim.Events,
		Collisions:     sim.Collisions,
		PeakQueueDepth: sim.PeakQueueDepth,
		Steps:          sim.StepCount,
		Trace:          sim.Trace,
	}
}

// admitReady pushes every pending job whose ready time has been reached.
func (sim *Simulator) admitReady() {
	for len(sim.pending) > 0 && sim.pending[0].EligibleAt() <= sim.Clock {
		j := sim.pending[0]
		sim.pending[0] = nil
		sim.pending = sim.pending[1:]
		j.markReady(j.EligibleAt())
		sim.Scheduler.Push(j)
		logrus.Debugf("[t=%g] admitted job %d (ready at %g)", sim.Clock, j.ID, *j.ReadyTime)
	}
	sim.PeakQueueDepth = max(sim.PeakQueueDepth, sim.Scheduler.Len())
}

// Step runs one idle-stove step: up to NumWorkers jobs are popped, the
// contention policy decides which of them take the stove, and the clock
// moves to the moment the stove is released.
func (sim *Simulator) Step() {
	sim.StepCount++

	// NumWorkers may be far larger than the queue; only what is waiting can contend.
	contenders := make([]*Job, 0, min(sim.Config.NumWorkers, sim.Scheduler.Len()))
	for i := 0; i < sim.Config.NumWorkers; i++ {
		j := sim.Scheduler.Pop()
		if j == nil {
			break
		}
		contenders = append(contenders, j)
	}
	if len(contenders) == 0 {
		panic(fmt.Sprintf("Step at t=%v with an empty scheduler", sim.Clock))
	}

	var dispatched, requeued []*Job
	if sim.Config.UseSemaphore {
		// Binary permit: the first contender wins; the others go back
		// in reverse so FCFS order is restored exactly.
		dispatched = contenders[:1]
		requeued = contenders[1:]
		for i := len(requeued) - 1; i >= 0; i-- {
			sim.Scheduler.Requeue(requeued[i])
		}
	} else {
		dispatched = contenders
		if len(dispatched) > 1 {
			sim.Collisions += len(dispatched) - 1
			logrus.Debugf("[t=%g] collision: %d jobs on the stove", sim.Clock, len(dispatched))
		}
	}

	now := sim.Clock
	releaseAt := now
	for _, j := range dispatched {
		j.markStarted(now)
		sim.Events = append(sim.Events, Event{Timestamp: now, Kind: EventJobStart, JobID: j.ID})
		releaseAt = max(releaseAt, now+j.CookTime)
	}

	// Finish events in finish-time order, ties in dispatch order, so the log stays chronological.
	byFinish := make([]*Job, len(dispatched))
	copy(byFinish, dispatched)
	sort.SliceStable(byFinish, func(a, b int) bool {
		return byFinish[a].CookTime < byFinish[b].CookTime
	})
	for _, j := range byFinish {
		finish := now + j.CookTime
		j.markFinished(finish)
		sim.Events = append(sim.Events, Event{Timestamp: finish, Kind: EventJobFinish, JobID: j.ID})
	}

	if sim.Trace != nil {
		sim.Trace.RecordDispatch(trace.DispatchRecord{
			Clock:      now,
			Contenders: jobIDs(contenders),
			Dispatched: jobIDs(dispatched),
			Requeued:   jobIDs(requeued),
			Collision:  len(dispatched) > 1,
		})
	}
	logrus.Debugf("[t=%g] step %d: dispatched %v, stove free at %g", now, sim.StepCount, jobIDs(dispatched), releaseAt)

	sim.busyUntil = releaseAt
	sim.Clock = releaseAt
}

// checkInvariants fails loudly on states valid input can never produce.
func (sim *Simulator) checkInvariants() {
	if sim.Scheduler.Len() != 0 || len(sim.pending) != 0 {
		panic(fmt.Sprintf("simulation ended with %d queued and %d pending jobs", sim.Scheduler.Len(), len(sim.pending)))
	}
	for _, j := range sim.Jobs {
		if err := j.checkTimeline(); err != nil {
			panic(err.Error())
		}
	}
	if sim.Config.UseSemaphore && sim.Collisions != 0 {
		panic(fmt.Sprintf("%d collisions recorded with the semaphore enabled", sim.Collisions))
	}
	for i := 1; i < len(sim.Events); i++ {
		if sim.Events[i].Timestamp < sim.Events[i-1].Timestamp {
			panic(fmt.Sprintf("event log out of order at index %d: %v after %v", i, sim.Events[i], sim.Events[i-1]))
		}
	}
}

func jobIDs(jobs []*Job) []int {
	if len(jobs) == 0 {
		return nil
	}
	ids := make([]int, len(jobs))
	for i, j := range jobs {
		ids[i] = j.ID
	}
	return ids
}
