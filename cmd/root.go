package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/stovesim/stovesim/sim"
	"github.com/stovesim/stovesim/sim/report"
	"github.com/stovesim/stovesim/sim/trace"
	"github.com/stovesim/stovesim/sim/workload"
)

var (
	logLevel         string // Log verbosity level
	defaultsFilePath string // Path to defaults.yaml

	// CLI flags for a single run
	scenarioName     string // Built-in scenario preset
	workloadSpecPath string // Path to a workload spec YAML, overrides --scenario
	seed             int64  // Overrides the workload seed when set
	variantName      string // Named variant from defaults.yaml, overrides --scheduler/--semaphore
	numWorkers       int    // Pop attempts per idle-stove step
	schedulerName    string // fcfs or sjf
	useSemaphore     bool   // Mutual exclusion on the stove
	jobsCSVPath      string // Per-job output CSV
	eventsCSVPath    string // Event log CSV
	ganttPath        string // Text timeline; "-" for stdout
	ganttMaxJobs     int    // Rows in the timeline
	traceLevel       string // Dispatch trace verbosity
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "stovesim",
	Short: "Discrete-event simulator for jobs contending for a single stove",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// runOptions is the resolved configuration of one `run` invocation.
type runOptions struct {
	Spec       workload.WorkloadSpec
	Config     sim.RunConfig
	TraceLevel string
	JobsCSV    string
	EventsCSV  string
	Gantt      string
	GanttMax   int
}

// runCmd executes one workload under one scheduler/semaphore variant
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one workload under one scheduler and semaphore setting",
	Run: func(cmd *cobra.Command, args []string) {
		var defaults *Config
		loadDefaults := func() Config {
			if defaults == nil {
				cfg, err := resolveDefaultsConfig(defaultsFilePath)
				if err != nil {
					logrus.Fatalf("%v", err)
				}
				defaults = &cfg
			}
			return *defaults
		}

		var spec workload.WorkloadSpec
		if workloadSpecPath != "" {
			loaded, err := workload.LoadWorkloadSpec(workloadSpecPath)
			if err != nil {
				logrus.Fatalf("Failed to load workload spec: %v", err)
			}
			spec = *loaded
		} else {
			scen, ok := workload.FindScenario(loadDefaults().Scenarios, scenarioName)
			if !ok {
				logrus.Fatalf("Unknown scenario %q; see `stovesim scenarios`", scenarioName)
			}
			spec = scen.Spec
		}
		// Only override the workload seed when the user asked for it.
		if cmd.Flags().Changed("seed") {
			spec.Seed = seed
		}
		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Unknown trace level %q; valid: none, decisions", traceLevel)
		}

		runCfg := sim.NewRunConfig(numWorkers, schedulerName, useSemaphore)
		if variantName != "" {
			v, ok := workload.FindVariant(loadDefaults().Variants, variantName)
			if !ok {
				logrus.Fatalf("Unknown variant %q; see `stovesim scenarios`", variantName)
			}
			runCfg = v.RunConfig(numWorkers)
		}

		opts := runOptions{
			Spec:       spec,
			Config:     runCfg,
			TraceLevel: traceLevel,
			JobsCSV:    jobsCSVPath,
			EventsCSV:  eventsCSVPath,
			Gantt:      ganttPath,
			GanttMax:   ganttMaxJobs,
		}
		if err := opts.Config.Validate(); err != nil {
			logrus.Fatalf("Invalid run config: %v", err)
		}
		if err := executeRun(opts, os.Stdout); err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// executeRun generates the workload, simulates it and writes every requested output.
// Metrics always go to stdout.
func executeRun(opts runOptions, stdout io.Writer) error {
	jobs, err := workload.GenerateJobs(&opts.Spec)
	if err != nil {
		return err
	}
	s, err := sim.NewSimulator(opts.Config, jobs)
	if err != nil {
		return err
	}
	if tc := (trace.TraceConfig{Level: trace.TraceLevel(opts.TraceLevel)}); tc.Enabled() {
		s.Trace = trace.NewSimulationTrace(tc)
	}
	res := s.Run()

	sim.ComputeMetrics(res).Print(stdout)
	if res.Trace != nil {
		printTraceSummary(stdout, trace.Summarize(res.Trace))
	}

	if opts.JobsCSV != "" {
		if err := writeFile(opts.JobsCSV, func(w io.Writer) error { return report.WriteJobsCSV(w, res.Jobs) }); err != nil {
			return err
		}
	}
	if opts.EventsCSV != "" {
		if err := writeFile(opts.EventsCSV, func(w io.Writer) error { return report.WriteEventsCSV(w, res.Events) }); err != nil {
			return err
		}
	}
	if opts.Gantt != "" {
		title := fmt.Sprintf("Gantt - %s/%s, scheduler=%s, semaphore=%v",
			opts.Spec.ArrivalPattern, opts.Spec.CookTimeDist, opts.Config.Scheduler, opts.Config.UseSemaphore)
		render := func(w io.Writer) error { return report.RenderGantt(w, title, res.Jobs, opts.GanttMax, 60) }
		if opts.Gantt == "-" {
			return render(stdout)
		}
		if err := writeFile(opts.Gantt, render); err != nil {
			return err
		}
	}
	return nil
}

func printTraceSummary(w io.Writer, ts *trace.TraceSummary) {
	fmt.Fprintln(w, "=== Dispatch Trace ===")
	fmt.Fprintf(w, "Steps                : %d\n", ts.TotalSteps)
	fmt.Fprintf(w, "Contended Steps      : %d\n", ts.ContendedSteps)
	fmt.Fprintf(w, "Collision Steps      : %d\n", ts.CollisionSteps)
	fmt.Fprintf(w, "Requeued Jobs        : %d\n", ts.RequeuedJobs)
	fmt.Fprintf(w, "Max Contenders       : %d\n", ts.MaxContenders)
}

// writeFile creates path and hands it to write, reporting close errors.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	if err := write(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&defaultsFilePath, "defaults-filepath", "defaults.yaml", "Path to default constants - scenario presets and variants")

	// Workload selection
	runCmd.Flags().StringVar(&scenarioName, "scenario", "bursty", "Built-in scenario preset from defaults.yaml")
	runCmd.Flags().StringVar(&workloadSpecPath, "workload-spec", "", "Path to a workload spec YAML (overrides --scenario)")
	runCmd.Flags().Int64Var(&seed, "seed", 123, "Seed for workload generation (overrides the workload seed when set)")

	// Run config
	runCmd.Flags().IntVar(&numWorkers, "workers", 4, "Number of cooks contending for the stove each step")
	runCmd.Flags().StringVar(&schedulerName, "scheduler", "fcfs", "Scheduler: fcfs or sjf")
	runCmd.Flags().BoolVar(&useSemaphore, "semaphore", false, "Enforce mutual exclusion on the stove")
	runCmd.Flags().StringVar(&variantName, "variant", "", "Named variant from defaults.yaml (overrides --scheduler and --semaphore)")

	// Outputs
	runCmd.Flags().StringVar(&jobsCSVPath, "jobs-csv", "", "Write per-job results to this CSV file")
	runCmd.Flags().StringVar(&eventsCSVPath, "events-csv", "", "Write the event log to this CSV file")
	runCmd.Flags().StringVar(&ganttPath, "gantt", "", "Write a text Gantt timeline to this file (\"-\" for stdout)")
	runCmd.Flags().IntVar(&ganttMaxJobs, "gantt-max-jobs", 12, "Maximum jobs shown in the Gantt timeline")
	runCmd.Flags().StringVar(&traceLevel, "trace-level", "none", "Dispatch trace level: none or decisions")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
