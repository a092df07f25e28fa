package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/stovesim/stovesim/sim"
	"github.com/stovesim/stovesim/sim/report"
	"github.com/stovesim/stovesim/sim/workload"
)

const (
	ganttScenario = "bursty"
	ganttVariant  = "D_SJF_sem"
	ganttRows     = 12
	chartWidth    = 40
)

var (
	outputsDir     string
	compareWorkers int
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run every scenario under every variant and write the comparison tables",
	Long: "Generate each scenario's workload once, run it under all scheduler/semaphore variants, " +
		"and write per-run job CSVs, summaries.csv, summaries.json and text charts into --outputs.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := resolveDefaultsConfig(defaultsFilePath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		workers := cfg.NumWorkers
		if cmd.Flags().Changed("workers") || workers == 0 {
			workers = compareWorkers
		}
		rows, err := runComparison(cfg, workers, outputsDir)
		if err != nil {
			logrus.Fatalf("Comparison failed: %v", err)
		}
		logrus.Infof("Wrote %d run summaries to %s", len(rows), outputsDir)
	},
}

// runComparison is the batch entry point: scenarios x variants, each variant
// on a fresh clone of the scenario's workload.
func runComparison(cfg Config, workers int, outDir string) ([]report.SummaryRow, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating outputs dir: %w", err)
	}

	var rows []report.SummaryRow
	utilization := make([]float64, 0, len(cfg.Scenarios))
	utilLabels := make([]string, 0, len(cfg.Scenarios))
	for _, scen := range cfg.Scenarios {
		jobs, err := workload.GenerateJobs(&scen.Spec)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", scen.Name, err)
		}

		labels := make([]string, 0, len(cfg.Variants))
		waits := make([]float64, 0, len(cfg.Variants))
		turns := make([]float64, 0, len(cfg.Variants))
		for _, v := range cfg.Variants {
			res, err := sim.Run(v.RunConfig(workers), sim.CloneJobs(jobs))
			if err != nil {
				return nil, fmt.Errorf("scenario %q variant %q: %w", scen.Name, v.Name, err)
			}
			jobsPath := filepath.Join(outDir, fmt.Sprintf("%s_%s_jobs.csv", scen.Name, v.Name))
			if err := writeFile(jobsPath, func(w io.Writer) error { return report.WriteJobsCSV(w, res.Jobs) }); err != nil {
				return nil, err
			}

			m := sim.ComputeMetrics(res)
			rows = append(rows, report.NewSummaryRow(scen.Name, v.Name, scen.Spec.Seed, workers, m))
			labels = append(labels, v.Name)
			waits = append(waits, m.MeanWaitingTime)
			turns = append(turns, m.MeanTurnaroundTime)

			if v.Name == ganttVariant {
				utilLabels = append(utilLabels, scen.Name)
				utilization = append(utilization, m.Utilization)
			}
			if scen.Name == ganttScenario && v.Name == ganttVariant {
				title := fmt.Sprintf("Gantt - %s, %s", scen.Name, v.Name)
				render := func(w io.Writer) error { return report.RenderGantt(w, title, res.Jobs, ganttRows, 60) }
				if err := writeFile(filepath.Join(outDir, scen.Name+"_gantt.txt"), render); err != nil {
					return nil, err
				}
			}
			logrus.Debugf("%s/%s: avg wait %.3f, collisions %d", scen.Name, v.Name, m.MeanWaitingTime, m.Collisions)
		}

		if err := writeBars(filepath.Join(outDir, scen.Name+"_wait_bars.txt"),
			"Average waiting time - "+scen.Name, labels, waits); err != nil {
			return nil, err
		}
		if err := writeBars(filepath.Join(outDir, scen.Name+"_turn_bars.txt"),
			"Average turnaround - "+scen.Name, labels, turns); err != nil {
			return nil, err
		}
	}

	if err := writeFile(filepath.Join(outDir, "summaries.csv"), func(w io.Writer) error { return report.WriteSummariesCSV(w, rows) }); err != nil {
		return nil, err
	}
	if err := writeFile(filepath.Join(outDir, "summaries.json"), func(w io.Writer) error { return report.WriteSummariesJSON(w, rows) }); err != nil {
		return nil, err
	}
	if len(utilLabels) > 0 {
		if err := writeBars(filepath.Join(outDir, "utilization_bars.txt"),
			"Stove utilization by scenario ("+ganttVariant+")", utilLabels, utilization); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

func writeBars(path, title string, labels []string, values []float64) error {
	return writeFile(path, func(w io.Writer) error { return report.RenderBars(w, title, labels, values, chartWidth) })
}

func init() {
	compareCmd.Flags().StringVar(&outputsDir, "outputs", "outputs", "Output directory for CSV/JSON/text charts")
	compareCmd.Flags().IntVar(&compareWorkers, "workers", 4, "Number of cooks (overrides num_workers from defaults.yaml)")

	rootCmd.AddCommand(compareCmd)
}
