package sim

import (
	"fmt"
	"math"
)

// RunConfig groups the parameters of a single simulation run.
// Immutable for the duration of the run.
type RunConfig struct {
	NumWorkers   int    `yaml:"num_workers" json:"num_workers"`     // pop attempts per idle-stove step (must be >= 1)
	Scheduler    string `yaml:"scheduler" json:"scheduler"`         // "fcfs" (default) or "sjf"
	UseSemaphore bool   `yaml:"use_semaphore" json:"use_semaphore"` // true = mutual exclusion on the stove
}

// NewRunConfig creates a RunConfig. Call Validate before handing it to the simulator.
func NewRunConfig(numWorkers int, scheduler string, useSemaphore bool) RunConfig {
	return RunConfig{NumWorkers: numWorkers, Scheduler: scheduler, UseSemaphore: useSemaphore}
}

// Validate checks the scheduler name and worker count.
func (c RunConfig) Validate() error {
	if c.NumWorkers < 1 {
		return fmt.Errorf("num_workers must be >= 1, got %d", c.NumWorkers)
	}
	if !IsValidScheduler(c.Scheduler) {
		return fmt.Errorf("unknown scheduler %q; valid: fcfs, sjf", c.Scheduler)
	}
	return nil
}

// ValidateJobs rejects malformed job records before a run starts:
// nil entries, duplicate ids, non-finite or out-of-range inputs, and
// jobs that already carry result timestamps.
func ValidateJobs(jobs []*Job) error {
	seen := make(map[int]bool, len(jobs))
	for i, j := range jobs {
		if j == nil {
			return fmt.Errorf("job[%d]: nil job", i)
		}
		if seen[j.ID] {
			return fmt.Errorf("job[%d]: duplicate id %d", i, j.ID)
		}
		seen[j.ID] = true
		if err := validateFinite(j.ID, "arrival_time", j.ArrivalTime); err != nil {
			return err
		}
		if err := validateFinite(j.ID, "cook_time", j.CookTime); err != nil {
			return err
		}
		if err := validateFinite(j.ID, "prep_time", j.PrepTime); err != nil {
			return err
		}
		if j.ArrivalTime < 0 {
			return fmt.Errorf("job %d: arrival_time must be >= 0, got %v", j.ID, j.ArrivalTime)
		}
		if j.CookTime <= 0 {
			return fmt.Errorf("job %d: cook_time must be > 0, got %v", j.ID, j.CookTime)
		}
		if j.PrepTime < 0 {
			return fmt.Errorf("job %d: prep_time must be >= 0, got %v", j.ID, j.PrepTime)
		}
		if j.ReadyTime != nil || j.StartTime != nil || j.FinishTime != nil {
			return fmt.Errorf("job %d: result timestamps already set; clone the job before rerunning", j.ID)
		}
	}
	return nil
}

func validateFinite(id int, field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("job %d: %s must be finite, got %v", id, field, v)
	}
	return nil
}
