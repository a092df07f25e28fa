package trace

import "testing"

func TestSummarize_NilTrace_ZeroValues(t *testing.T) {
	summary := Summarize(nil)
	if *summary != (TraceSummary{}) {
		t.Errorf("expected zero summary, got %+v", *summary)
	}
}

func TestSummarize_EmptyTrace_ZeroValues(t *testing.T) {
	// GIVEN an empty trace
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})

	// WHEN summarized
	summary := Summarize(st)

	// THEN all counts are zero
	if summary.TotalSteps != 0 || summary.ContendedSteps != 0 || summary.CollisionSteps != 0 {
		t.Errorf("expected zero step counts, got %+v", *summary)
	}
	if summary.RequeuedJobs != 0 || summary.MaxContenders != 0 {
		t.Errorf("expected zero requeue/contender counts, got %+v", *summary)
	}
}

func TestSummarize_PopulatedTrace_CorrectCounts(t *testing.T) {
	// GIVEN a trace with one uncontended step, one exclusive contended step and one collision
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})
	st.RecordDispatch(DispatchRecord{Clock: 0, Contenders: []int{1}, Dispatched: []int{1}})
	st.RecordDispatch(DispatchRecord{Clock: 2, Contenders: []int{2, 3, 4}, Dispatched: []int{2}, Requeued: []int{3, 4}})
	st.RecordDispatch(DispatchRecord{Clock: 5, Contenders: []int{3, 4}, Dispatched: []int{3, 4}, Collision: true})

	// WHEN summarized
	summary := Summarize(st)

	// THEN counts match
	if summary.TotalSteps != 3 {
		t.Errorf("expected 3 steps, got %d", summary.TotalSteps)
	}
	if summary.ContendedSteps != 2 {
		t.Errorf("expected 2 contended steps, got %d", summary.ContendedSteps)
	}
	if summary.CollisionSteps != 1 {
		t.Errorf("expected 1 collision step, got %d", summary.CollisionSteps)
	}
	if summary.RequeuedJobs != 2 {
		t.Errorf("expected 2 requeued jobs, got %d", summary.RequeuedJobs)
	}
	if summary.MaxContenders != 3 {
		t.Errorf("expected max 3 contenders, got %d", summary.MaxContenders)
	}
}
