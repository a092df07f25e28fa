// Defines the Job struct that models a single unit of work contending for the stove.
// Tracks arrival, preparation and cook durations, plus the timestamps the simulator fills in.

package sim

import (
	"fmt"
)

// Job models a single job's lifecycle in the simulation.
// Inputs (ArrivalTime, CookTime, PrepTime) are fixed by the workload generator.
// Outputs (ReadyTime, StartTime, FinishTime) are nil until the Simulator sets them,
// and are never overwritten once set.
type Job struct {
	ID int `json:"id"` // Unique within a run; assigned by the caller

	ArrivalTime float64 `json:"arrival_time"` // Simulated time the job shows up
	CookTime    float64 `json:"cook_time"`    // Stove occupancy duration, must be > 0
	PrepTime    float64 `json:"prep_time"`    // Delay between arrival and scheduling eligibility

	ReadyTime  *float64 `json:"ready_time"`  // ArrivalTime + PrepTime, set on admission
	StartTime  *float64 `json:"start_time"`  // First moment on the stove
	FinishTime *float64 `json:"finish_time"` // Moment the stove is released
}

// NewJob creates a job with unset result timestamps.
func NewJob(id int, arrival, cook, prep float64) *Job {
	return &Job{ID: id, ArrivalTime: arrival, CookTime: cook, PrepTime: prep}
}

// EligibleAt returns the instant the job may enter the scheduler.
func (j *Job) EligibleAt() float64 {
	return j.ArrivalTime + j.PrepTime
}

// WaitingTime returns StartTime - ReadyTime.
// ok is false when either timestamp is unset; callers must not treat that as zero.
func (j *Job) WaitingTime() (wait float64, ok bool) {
	if j.StartTime == nil || j.ReadyTime == nil {
		return 0, false
	}
	return *j.StartTime - *j.ReadyTime, true
}

// TurnaroundTime returns FinishTime - ArrivalTime, or ok=false if the job never finished.
func (j *Job) TurnaroundTime() (turnaround float64, ok bool) {
	if j.FinishTime == nil {
		return 0, false
	}
	return *j.FinishTime - j.ArrivalTime, true
}

// Clone returns a copy carrying the same inputs and no results,
// so one workload can be replayed under several run configurations.
func (j *Job) Clone() *Job {
	return NewJob(j.ID, j.ArrivalTime, j.CookTime, j.PrepTime)
}

// CloneJobs clones every job in order.
func CloneJobs(jobs []*Job) []*Job {
	out := make([]*Job, len(jobs))
	for i, j := range jobs {
		out[i] = j.Clone()
	}
	return out
}

func (j *Job) markReady(t float64) {
	if j.ReadyTime != nil {
		panic(fmt.Sprintf("job %d: ready time already set to %v", j.ID, *j.ReadyTime))
	}
	j.ReadyTime = &t
}

func (j *Job) markStarted(t float64) {
	if j.StartTime != nil {
		panic(fmt.Sprintf("job %d: start time already set to %v", j.ID, *j.StartTime))
	}
	j.StartTime = &t
}

func (j *Job) markFinished(t float64) {
	if j.StartTime == nil {
		panic(fmt.Sprintf("job %d: finishing without a start time", j.ID))
	}
	if j.FinishTime != nil {
		panic(fmt.Sprintf("job %d: finish time already set to %v", j.ID, *j.FinishTime))
	}
	j.FinishTime = &t
}

// checkTimeline enforces arrival <= ready <= start <= finish on a finished job.
func (j *Job) checkTimeline() error {
	if j.ReadyTime == nil || j.StartTime == nil || j.FinishTime == nil {
		return fmt.Errorf("job %d: incomplete timeline (ready=%v start=%v finish=%v)",
			j.ID, j.ReadyTime != nil, j.StartTime != nil, j.FinishTime != nil)
	}
	if !(j.ArrivalTime <= *j.ReadyTime && *j.ReadyTime <= *j.StartTime && *j.StartTime <= *j.FinishTime) {
		return fmt.Errorf("job %d: timestamps out of order (arrival=%v ready=%v start=%v finish=%v)",
			j.ID, j.ArrivalTime, *j.ReadyTime, *j.StartTime, *j.FinishTime)
	}
	return nil
}

// This method returns a human-readable string representation of a Job.
func (j Job) String() string {
	return fmt.Sprintf("Job: (ID: %d, Arrival: %g, Cook: %g, Prep: %g)", j.ID, j.ArrivalTime, j.CookTime, j.PrepTime)
}
