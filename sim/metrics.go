// Aggregates per-run statistics over finished jobs and the event log:
// waiting/turnaround means, stove utilization, throughput and collisions.

package sim

import (
	"fmt"
	"io"
	"sort"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
)

// Metrics aggregates statistics about a finished run for final reporting.
// Jobs whose derived times are undefined are excluded from the averages
// and listed by ID instead, never counted as zero.
type Metrics struct {
	CompletedJobs int `json:"completed_jobs"`

	MeanWaitingTime    float64 `json:"avg_waiting_time"`
	P50WaitingTime     float64 `json:"p50_waiting_time"`
	P95WaitingTime     float64 `json:"p95_waiting_time"`
	MeanTurnaroundTime float64 `json:"avg_turnaround_time"`

	Makespan    float64 `json:"makespan"`    // latest finish time, measured from t=0
	BusyTime    float64 `json:"busy_time"`   // stove occupancy, see Utilization
	Throughput  float64 `json:"throughput"`  // completed jobs per unit of simulated time
	Utilization float64 `json:"utilization"` // BusyTime / Makespan; may exceed 1 without the semaphore
	MaxQueue    int     `json:"max_queue"`   // peak scheduler depth observed by the engine
	Collisions  int     `json:"collisions"`

	UndefinedWaiting    []int `json:"undefined_waiting,omitempty"`    // job IDs with no waiting time
	UndefinedTurnaround []int `json:"undefined_turnaround,omitempty"` // job IDs with no turnaround time
}

// ComputeMetrics is a pure read-only aggregation over a run's jobs and events.
func ComputeMetrics(res *Result) *Metrics {
	m := &Metrics{
		Collisions: res.Collisions,
		MaxQueue:   res.PeakQueueDepth,
	}

	waits := make([]float64, 0, len(res.Jobs))
	turnarounds := make([]float64, 0, len(res.Jobs))
	for _, j := range res.Jobs {
		if w, ok := j.WaitingTime(); ok {
			waits = append(waits, w)
		} else {
			m.UndefinedWaiting = append(m.UndefinedWaiting, j.ID)
		}
		if ta, ok := j.TurnaroundTime(); ok {
			turnarounds = append(turnarounds, ta)
			m.CompletedJobs++
			m.Makespan = max(m.Makespan, *j.FinishTime)
		} else {
			m.UndefinedTurnaround = append(m.UndefinedTurnaround, j.ID)
		}
	}
	if n := len(m.UndefinedWaiting) + len(m.UndefinedTurnaround); n > 0 {
		logrus.Warnf("metrics: %d jobs without waiting time %v, %d without turnaround time %v",
			len(m.UndefinedWaiting), m.UndefinedWaiting, len(m.UndefinedTurnaround), m.UndefinedTurnaround)
	}

	if len(waits) > 0 {
		m.MeanWaitingTime = stat.Mean(waits, nil)
		sort.Float64s(waits)
		m.P50WaitingTime = stat.Quantile(0.50, stat.Empirical, waits, nil)
		m.P95WaitingTime = stat.Quantile(0.95, stat.Empirical, waits, nil)
	}
	if len(turnarounds) > 0 {
		m.MeanTurnaroundTime = stat.Mean(turnarounds, nil)
	}

	intervals := OccupancyIntervals(res.Events)
	if res.Config.UseSemaphore {
		m.BusyTime = UnionLength(intervals)
	} else {
		// Overlap is the artifact being measured: count every job's full duration.
		m.BusyTime = SumLength(intervals)
	}
	if m.Makespan > 0 {
		m.Utilization = m.BusyTime / m.Makespan
		m.Throughput = float64(m.CompletedJobs) / m.Makespan
	}
	return m
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Simulation Metrics ===")
	fmt.Fprintf(w, "Completed Jobs       : %d\n", m.CompletedJobs)
	fmt.Fprintf(w, "Average Waiting Time : %.3f\n", m.MeanWaitingTime)
	fmt.Fprintf(w, "P50 / P95 Waiting    : %.3f / %.3f\n", m.P50WaitingTime, m.P95WaitingTime)
	fmt.Fprintf(w, "Average Turnaround   : %.3f\n", m.MeanTurnaroundTime)
	fmt.Fprintf(w, "Makespan             : %.3f\n", m.Makespan)
	fmt.Fprintf(w, "Throughput           : %.4f jobs/unit\n", m.Throughput)
	fmt.Fprintf(w, "Stove Utilization    : %.2f%%\n", m.Utilization*100)
	fmt.Fprintf(w, "Max Queue            : %d\n", m.MaxQueue)
	fmt.Fprintf(w, "Collisions           : %d\n", m.Collisions)
	if len(m.UndefinedWaiting) > 0 || len(m.UndefinedTurnaround) > 0 {
		fmt.Fprintf(w, "Undefined Waiting    : %v\n", m.UndefinedWaiting)
		fmt.Fprintf(w, "Undefined Turnaround : %v\n", m.UndefinedTurnaround)
	}
}
