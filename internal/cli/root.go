// Package cli wires the perfrun command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/perfrun/perfrun/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "perfrun",
	Short: "perfrun - automated Linux perf profiling runs",
	Long: `Drive a record / annotate / stat perf pipeline from a YAML configuration.

Each run collects its artifacts into a timestamped directory under the
configured output location:
  perf.data                 binary sample data from perf record
  perf_record_output.log    captured perf record output
  perf_annotate.txt         annotation report (when enabled)
  perf_stat.txt             counter statistics
  config_used.yaml          the effective configuration of the run`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("perfrun version %s\n", version.Version)
			cmd.Printf("Git commit: %s\n", version.GitCommit)
			cmd.Printf("Build date: %s\n", version.BuildDate)
			cmd.Printf("Go version: %s\n", version.GoVersion)
		},
	}
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
