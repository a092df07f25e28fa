package trace

import (
	"testing"
)

func TestSimulationTrace_RecordDispatch_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for decisions
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})

	// WHEN a dispatch record is recorded
	st.RecordDispatch(DispatchRecord{
		Clock:      2.5,
		Contenders: []int{3, 1},
		Dispatched: []int{3},
		Requeued:   []int{1},
	})

	// THEN the trace contains one dispatch record with correct data
	if len(st.Dispatches) != 1 {
		t.Fatalf("expected 1 dispatch, got %d", len(st.Dispatches))
	}
	if st.Dispatches[0].Clock != 2.5 {
		t.Errorf("expected clock 2.5, got %v", st.Dispatches[0].Clock)
	}
	if st.Dispatches[0].Collision {
		t.Error("expected collision=false")
	}
}

func TestSimulationTrace_MultipleRecords_PreservesOrder(t *testing.T) {
	// GIVEN a trace
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})

	// WHEN multiple records are added
	st.RecordDispatch(DispatchRecord{Clock: 0, Contenders: []int{1}, Dispatched: []int{1}})
	st.RecordDispatch(DispatchRecord{Clock: 5, Contenders: []int{2}, Dispatched: []int{2}})

	// THEN order is preserved
	if len(st.Dispatches) != 2 {
		t.Fatalf("expected 2 dispatches, got %d", len(st.Dispatches))
	}
	if st.Dispatches[0].Dispatched[0] != 1 || st.Dispatches[1].Dispatched[0] != 2 {
		t.Error("dispatch order not preserved")
	}
}

func TestTraceConfig_Enabled(t *testing.T) {
	if (TraceConfig{Level: TraceLevelNone}).Enabled() {
		t.Error("none level must not be enabled")
	}
	if (TraceConfig{}).Enabled() {
		t.Error("empty level must not be enabled")
	}
	if !(TraceConfig{Level: TraceLevelDecisions}).Enabled() {
		t.Error("decisions level must be enabled")
	}
}

func TestIsValidTraceLevel_ValidLevels(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"none", true},
		{"decisions", true},
		{"", true}, // empty defaults to none
		{"detailed", false},
		{"foobar", false},
		{"NONE", false}, // case-sensitive
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := IsValidTraceLevel(tt.level); got != tt.valid {
				t.Errorf("IsValidTraceLevel(%q) = %v, want %v", tt.level, got, tt.valid)
			}
		})
	}
}
