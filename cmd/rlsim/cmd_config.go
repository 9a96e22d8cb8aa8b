package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect rlsim configuration",
		Long: `View the effective rlsim configuration.

Configuration is read from ~/.rlsim/config.yaml (or --config) and then
overridden by RLSIM_TRIALS, RLSIM_SEED, RLSIM_OUTPUT, RLSIM_LOG_LEVEL, and
RLSIM_DECISION_DIR.

Examples:
  rlsim config list            # Show all settings as YAML
  rlsim config list --json     # Same, as JSON`,
	}

	cmd.AddCommand(newConfigListCmd())

	return cmd
}

func newConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all configuration settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				return json.NewEncoder(out).Encode(cfg)
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			_, err = out.Write(data)
			return err
		},
	}
}
