package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List the scenario presets and variants from defaults.yaml",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := resolveDefaultsConfig(defaultsFilePath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		if err := printScenarios(os.Stdout, cfg); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

func printScenarios(out io.Writer, cfg Config) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCENARIO\tJOBS\tARRIVALS\tCOOK TIMES\tSEED")
	for _, s := range cfg.Scenarios {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%d\n", s.Name, s.Spec.NumJobs, s.Spec.ArrivalPattern, s.Spec.CookTimeDist, s.Spec.Seed)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "VARIANT\tSCHEDULER\tSEMAPHORE\t\t")
	for _, v := range cfg.Variants {
		fmt.Fprintf(tw, "%s\t%s\t%v\t\t\n", v.Name, v.Scheduler, v.UseSemaphore)
	}
	return tw.Flush()
}

func init() {
	rootCmd.AddCommand(scenariosCmd)
}
