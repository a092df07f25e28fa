package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalSteps     int // idle-stove steps that popped at least one job
	ContendedSteps int // steps with more than one contender
	CollisionSteps int // steps that put more than one job on the stove
	RequeuedJobs   int // jobs handed back after losing the race
	MaxContenders  int
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{}
	if st == nil {
		return summary
	}

	summary.TotalSteps = len(st.Dispatches)
	for _, d := range st.Dispatches {
		if len(d.Contenders) > 1 {
			summary.ContendedSteps++
		}
		if d.Collision {
			summary.CollisionSteps++
		}
		summary.RequeuedJobs += len(d.Requeued)
		if len(d.Contenders) > summary.MaxContenders {
			summary.MaxContenders = len(d.Contenders)
		}
	}
	return summary
}
