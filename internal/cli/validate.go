package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/perfrun/perfrun/internal/config"
)

func newValidateCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a run configuration",
		Long: `Load and validate a configuration file without running any stage.

Reports every missing required key and out-of-range value at once.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("configuration is invalid: %w", err)
			}
			cfg.ApplyDefaults()
			cmd.Printf("Configuration is valid; runs will be written under %s\n", cfg.OutputDirectory)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to YAML configuration file")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
