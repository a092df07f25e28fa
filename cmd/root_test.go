package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stovesim/stovesim/sim"
	"github.com/stovesim/stovesim/sim/report"
	"github.com/stovesim/stovesim/sim/workload"
)

func TestExecuteRun_WritesMetricsAndOutputs(t *testing.T) {
	// GIVEN a small poisson workload under FCFS with the semaphore and tracing on
	dir := t.TempDir()
	opts := runOptions{
		Spec:       workload.WorkloadSpec{NumJobs: 10, ArrivalPattern: "poisson", CookTimeDist: "uniform", Seed: 1},
		Config:     sim.NewRunConfig(2, "fcfs", true),
		TraceLevel: "decisions",
		JobsCSV:    filepath.Join(dir, "jobs.csv"),
		EventsCSV:  filepath.Join(dir, "events.csv"),
		Gantt:      "-",
		GanttMax:   5,
	}
	var stdout bytes.Buffer

	// WHEN the run executes
	require.NoError(t, executeRun(opts, &stdout))

	// THEN the metrics block is printed to stdout (BC-1)
	out := stdout.String()
	assert.Contains(t, out, "=== Simulation Metrics ===")
	assert.Contains(t, out, "Completed Jobs       : 10")
	assert.Contains(t, out, "Collisions           : 0")
	assert.Contains(t, out, "=== Dispatch Trace ===")
	assert.Contains(t, out, "Gantt - poisson/uniform")

	// AND the CSVs hold one row per job / per event plus a header
	jobsCSV, err := os.ReadFile(opts.JobsCSV)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(jobsCSV)), "\n"), 11)
	eventsCSV, err := os.ReadFile(opts.EventsCSV)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(eventsCSV)), "\n"), 21)
}

func TestExecuteRun_InvalidSpec_ReturnsError(t *testing.T) {
	opts := runOptions{
		Spec:   workload.WorkloadSpec{NumJobs: 3, ArrivalPattern: "hourly", CookTimeDist: "uniform"},
		Config: sim.NewRunConfig(1, "fcfs", false),
	}
	err := executeRun(opts, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "arrival_pattern")
}

func smallCompareConfig() Config {
	return Config{
		Version:    "1",
		NumWorkers: 3,
		Scenarios: []workload.Scenario{
			{Name: "bursty", Spec: workload.WorkloadSpec{NumJobs: 8, ArrivalPattern: "bursty", CookTimeDist: "mix", Seed: 7}},
			{Name: "poisson", Spec: workload.WorkloadSpec{NumJobs: 6, ArrivalPattern: "poisson", CookTimeDist: "expon_tail", Seed: 7}},
		},
		Variants: []workload.Variant{
			{Name: "A_FCFS_no_sem", Scheduler: "fcfs", UseSemaphore: false},
			{Name: "D_SJF_sem", Scheduler: "sjf", UseSemaphore: true},
		},
	}
}

func TestRunComparison_WritesEveryArtifact(t *testing.T) {
	// GIVEN two scenarios and two variants
	dir := t.TempDir()

	// WHEN the comparison runs
	rows, err := runComparison(smallCompareConfig(), 3, dir)

	// THEN there is one summary per scenario x variant, in order
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "bursty", rows[0].Scenario)
	assert.Equal(t, "A_FCFS_no_sem", rows[0].Variant)
	assert.Equal(t, "poisson", rows[3].Scenario)
	assert.Equal(t, "D_SJF_sem", rows[3].Variant)
	for _, r := range rows {
		assert.Equal(t, 3, r.Workers)
		assert.Zero(t, r.UndefinedJobs, "every job finishes")
		if r.Variant == "D_SJF_sem" {
			assert.Zero(t, r.Collisions, "semaphore runs never collide")
		}
	}

	// AND every artifact exists
	for _, name := range []string{
		"bursty_A_FCFS_no_sem_jobs.csv", "bursty_D_SJF_sem_jobs.csv",
		"poisson_A_FCFS_no_sem_jobs.csv", "poisson_D_SJF_sem_jobs.csv",
		"bursty_wait_bars.txt", "bursty_turn_bars.txt", "poisson_wait_bars.txt", "poisson_turn_bars.txt",
		"bursty_gantt.txt", "summaries.csv", "summaries.json", "utilization_bars.txt",
	} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
	assert.NoFileExists(t, filepath.Join(dir, "poisson_gantt.txt"))

	// AND summaries.json decodes back to the returned rows
	data, err := os.ReadFile(filepath.Join(dir, "summaries.json"))
	require.NoError(t, err)
	var decoded []report.SummaryRow
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, rows, decoded)
}

func TestRunComparison_Deterministic(t *testing.T) {
	// GIVEN the same config run into two directories
	dirA, dirB := t.TempDir(), t.TempDir()
	_, err := runComparison(smallCompareConfig(), 2, dirA)
	require.NoError(t, err)
	_, err = runComparison(smallCompareConfig(), 2, dirB)
	require.NoError(t, err)

	// THEN summaries are byte-identical, run IDs included
	for _, name := range []string{"summaries.csv", "summaries.json", "bursty_gantt.txt"} {
		a, err := os.ReadFile(filepath.Join(dirA, name))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(dirB, name))
		require.NoError(t, err)
		assert.Equal(t, string(a), string(b), name)
	}
}

func TestPrintScenarios_ListsPresetsAndVariants(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, printScenarios(&buf, builtinConfig()))

	out := buf.String()
	for _, s := range workload.BuiltinScenarios() {
		assert.Contains(t, out, s.Name)
	}
	for _, v := range workload.BuiltinVariants() {
		assert.Contains(t, out, v.Name)
	}
	assert.Contains(t, out, "expon_tail")
}
