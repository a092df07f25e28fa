package sim

import "fmt"

// EventKind names a job state transition on the stove.
type EventKind string

const (
	// EventJobStart marks a job taking the stove.
	EventJobStart EventKind = "job_start"
	// EventJobFinish marks a job releasing the stove.
	EventJobFinish EventKind = "job_finish"
)

// Event is an immutable timestamped record of a job state transition.
// The Simulator appends events in non-decreasing Timestamp order; the
// resulting slice is the audit trail used to build Gantt-style timelines.
type Event struct {
	Timestamp float64   `json:"timestamp"`
	Kind      EventKind `json:"kind"`
	JobID     int       `json:"job_id"`
}

func (e Event) String() string {
	return fmt.Sprintf("[t=%g] %s job=%d", e.Timestamp, e.Kind, e.JobID)
}
