package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/stovesim/stovesim/sim"
)

var jobsHeader = []string{
	"id", "arrival_time", "cook_time", "prep_time",
	"ready_time", "start_time", "finish_time", "waiting_time", "turnaround_time",
}

// WriteJobsCSV writes one row per job. Unset timestamps and undefined
// derived times are written as empty cells, never as 0.
func WriteJobsCSV(w io.Writer, jobs []*sim.Job) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(jobsHeader); err != nil {
		return fmt.Errorf("writing jobs header: %w", err)
	}
	for _, j := range jobs {
		wait, waitOK := j.WaitingTime()
		ta, taOK := j.TurnaroundTime()
		row := []string{
			strconv.Itoa(j.ID),
			formatFloat(j.ArrivalTime),
			formatFloat(j.CookTime),
			formatFloat(j.PrepTime),
			formatOptional(j.ReadyTime),
			formatOptional(j.StartTime),
			formatOptional(j.FinishTime),
			formatIf(wait, waitOK),
			formatIf(ta, taOK),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing job %d: %w", j.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteEventsCSV writes the event log in order.
func WriteEventsCSV(w io.Writer, events []sim.Event) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"timestamp", "kind", "job_id"}); err != nil {
		return fmt.Errorf("writing events header: %w", err)
	}
	for _, e := range events {
		if err := cw.Write([]string{formatFloat(e.Timestamp), string(e.Kind), strconv.Itoa(e.JobID)}); err != nil {
			return fmt.Errorf("writing event: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

var summaryHeader = []string{
	"run_id", "scenario", "variant", "workers",
	"avg_waiting_time", "avg_turnaround_time", "p95_waiting_time",
	"throughput", "utilization", "makespan", "max_queue", "collisions", "undefined_jobs",
}

// WriteSummariesCSV writes one row per run.
func WriteSummariesCSV(w io.Writer, rows []SummaryRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(summaryHeader); err != nil {
		return fmt.Errorf("writing summaries header: %w", err)
	}
	for _, r := range rows {
		rec := []string{
			r.RunID, r.Scenario, r.Variant, strconv.Itoa(r.Workers),
			formatFloat(r.AvgWaitingTime), formatFloat(r.AvgTurnaroundTime), formatFloat(r.P95WaitingTime),
			formatFloat(r.Throughput), formatFloat(r.Utilization), formatFloat(r.Makespan),
			strconv.Itoa(r.MaxQueue), strconv.Itoa(r.Collisions), strconv.Itoa(r.UndefinedJobs),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing summary %s/%s: %w", r.Scenario, r.Variant, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

func formatIf(v float64, ok bool) string {
	if !ok {
		return ""
	}
	return formatFloat(v)
}
