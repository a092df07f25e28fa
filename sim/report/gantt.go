package report

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/stovesim/stovesim/sim"
)

// RenderGantt draws a text timeline of the first maxJobs jobs by start time.
// Each row spans [0, latest finish] scaled to width columns; '#' marks stove occupancy.
// Jobs that never started are skipped.
func RenderGantt(w io.Writer, title string, jobs []*sim.Job, maxJobs, width int) error {
	if width < 10 {
		return fmt.Errorf("gantt width must be >= 10, got %d", width)
	}
	started := make([]*sim.Job, 0, len(jobs))
	for _, j := range jobs {
		if j.StartTime != nil && j.FinishTime != nil {
			started = append(started, j)
		}
	}
	sort.SliceStable(started, func(a, b int) bool {
		if *started[a].StartTime != *started[b].StartTime {
			return *started[a].StartTime < *started[b].StartTime
		}
		return started[a].ID < started[b].ID
	})
	if maxJobs > 0 && len(started) > maxJobs {
		started = started[:maxJobs]
	}

	horizon := 0.0
	for _, j := range started {
		horizon = math.Max(horizon, *j.FinishTime)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", title)
	if len(started) == 0 || horizon == 0 {
		sb.WriteString("(no dispatched jobs)\n")
		_, err := io.WriteString(w, sb.String())
		return err
	}
	scale := float64(width) / horizon
	for _, j := range started {
		from := int(math.Floor(*j.StartTime * scale))
		to := int(math.Ceil(*j.FinishTime * scale))
		from = min(from, width-1)
		to = min(max(to, from+1), width)
		row := strings.Repeat(".", from) + strings.Repeat("#", to-from) + strings.Repeat(".", width-to)
		fmt.Fprintf(&sb, "job %4d |%s| %g-%g\n", j.ID, row, *j.StartTime, *j.FinishTime)
	}
	fmt.Fprintf(&sb, "         0%s%g\n", strings.Repeat(" ", width), horizon)
	_, err := io.WriteString(w, sb.String())
	return err
}

// RenderBars draws one horizontal bar per label, scaled to the largest value.
func RenderBars(w io.Writer, title string, labels []string, values []float64, width int) error {
	if len(labels) != len(values) {
		return fmt.Errorf("bars: %d labels for %d values", len(labels), len(values))
	}
	labelWidth := 0
	peak := 0.0
	for i, l := range labels {
		labelWidth = max(labelWidth, len(l))
		peak = math.Max(peak, values[i])
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", title)
	for i, l := range labels {
		n := 0
		if peak > 0 {
			n = int(math.Round(values[i] / peak * float64(width)))
		}
		fmt.Fprintf(&sb, "%-*s |%s %.2f\n", labelWidth, l, strings.Repeat("#", n), values[i])
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
