// sim/metrics_utils.go
package sim

import (
	"sort"
)

// Interval is one job's stay on the stove, rebuilt from the event log.
type Interval struct {
	JobID int
	Start float64
	End   float64
}

// OccupancyIntervals pairs job_start and job_finish events by job ID.
// A start with no matching finish yields no interval.
// Returned intervals are sorted by Start, then JobID.
func OccupancyIntervals(events []Event) []Interval {
	starts := make(map[int]float64)
	intervals := make([]Interval, 0, len(events)/2)
	for _, e := range events {
		switch e.Kind {
		case EventJobStart:
			starts[e.JobID] = e.Timestamp
		case EventJobFinish:
			if s, ok := starts[e.JobID]; ok {
				intervals = append(intervals, Interval{JobID: e.JobID, Start: s, End: e.Timestamp})
				delete(starts, e.JobID)
			}
		}
	}
	sort.Slice(intervals, func(a, b int) bool {
		if intervals[a].Start != intervals[b].Start {
			return intervals[a].Start < intervals[b].Start
		}
		return intervals[a].JobID < intervals[b].JobID
	})
	return intervals
}

// SumLength adds up every interval's duration, overlaps included.
func SumLength(intervals []Interval) float64 {
	total := 0.0
	for _, iv := range intervals {
		total += iv.End - iv.Start
	}
	return total
}

// UnionLength returns the measure of the union of intervals (sorted by Start),
// so overlapping occupancy is counted once.
func UnionLength(intervals []Interval) float64 {
	if len(intervals) == 0 {
		return 0
	}
	total := 0.0
	curStart, curEnd := intervals[0].Start, intervals[0].End
	for _, iv := range intervals[1:] {
		if iv.Start > curEnd {
			total += curEnd - curStart
			curStart, curEnd = iv.Start, iv.End
			continue
		}
		curEnd = max(curEnd, iv.End)
	}
	return total + (curEnd - curStart)
}
