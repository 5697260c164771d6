package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/perfrun/perfrun/internal/logging"
	"github.com/perfrun/perfrun/internal/perf"
	"github.com/perfrun/perfrun/internal/pipeline"
	"github.com/perfrun/perfrun/internal/privilege"
)

func newRunCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute a profiling run",
		Long: `Execute one record / annotate / stat profiling run.

The run aborts if perf record fails; annotate and stat failures are logged
and the run still completes. The process exits 0 only for a completed run.

System-wide capture usually needs root or a relaxed
kernel.perf_event_paranoid setting.

Examples:
  perfrun run -c example_config.yaml
  sudo perfrun run -c example_config.yaml --log-level debug`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewWithComponent(logging.Config{
				Level:  logLevel,
				Pretty: pretty,
			}, "perfrun")

			// One-time cooperative niceness so the tool's own scheduling
			// does not skew the measurements.
			if err := privilege.LowerPriority(); err != nil {
				logger.Warn().Err(err).Msg("Could not lower process priority")
			}
			if !privilege.IsRoot() {
				logger.Warn().Msg("Not running as root; system-wide capture may be restricted")
			}

			// A termination signal cancels the context, which kills the
			// running perf child instead of orphaning a long capture.
			ctx, stop := signal.NotifyContext(context.Background(),
				os.Interrupt, syscall.SIGTERM)
			defer stop()

			runner := perf.NewRunner(logger)
			p := pipeline.New(configPath, runner, logger)
			return p.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to YAML configuration file")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&pretty, "pretty", true, "Human-readable log output")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
