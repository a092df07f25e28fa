// Package report serializes simulation results for downstream tools:
// per-job and per-event CSV tables, run summaries as CSV/JSON, and a
// text timeline of stove occupancy.
package report

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/stovesim/stovesim/sim"
)

// runNamespace scopes name-based run IDs to this tool.
var runNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/stovesim/stovesim/runs"))

// RunID derives a stable identifier for a scenario/variant/seed/workers tuple,
// so rerunning the same comparison yields byte-identical summaries.
func RunID(scenario, variant string, seed int64, workers int) string {
	name := fmt.Sprintf("%s/%s/seed=%d/workers=%d", scenario, variant, seed, workers)
	return uuid.NewSHA1(runNamespace, []byte(name)).String()
}

// SummaryRow is one line of summaries.csv / one record of summaries.json.
type SummaryRow struct {
	RunID    string `json:"run_id"`
	Scenario string `json:"scenario"`
	Variant  string `json:"variant"`
	Workers  int    `json:"workers"`

	AvgWaitingTime    float64 `json:"avg_waiting_time"`
	AvgTurnaroundTime float64 `json:"avg_turnaround_time"`
	P95WaitingTime    float64 `json:"p95_waiting_time"`
	Throughput        float64 `json:"throughput"`
	Utilization       float64 `json:"utilization"`
	Makespan          float64 `json:"makespan"`
	MaxQueue          int     `json:"max_queue"`
	Collisions        int     `json:"collisions"`
	UndefinedJobs     int     `json:"undefined_jobs"`
}

// NewSummaryRow flattens run metrics into a report row.
func NewSummaryRow(scenario, variant string, seed int64, workers int, m *sim.Metrics) SummaryRow {
	return SummaryRow{
		RunID:             RunID(scenario, variant, seed, workers),
		Scenario:          scenario,
		Variant:           variant,
		Workers:           workers,
		AvgWaitingTime:    m.MeanWaitingTime,
		AvgTurnaroundTime: m.MeanTurnaroundTime,
		P95WaitingTime:    m.P95WaitingTime,
		Throughput:        m.Throughput,
		Utilization:       m.Utilization,
		Makespan:          m.Makespan,
		MaxQueue:          m.MaxQueue,
		Collisions:        m.Collisions,
		UndefinedJobs:     len(m.UndefinedTurnaround),
	}
}
