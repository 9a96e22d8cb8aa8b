package main

import (
	"fmt"

	"github.com/nvandessel/rlsim/internal/pathutil"
	"github.com/nvandessel/rlsim/internal/visualization"
	"github.com/spf13/cobra"
)

func newPlotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Plot mean reward by severity group",
		Long: `Simulate each severity group and write a bar chart of mean rewards.

The chart format follows the output extension (.png or .svg). Missing
directories are created.

Examples:
  rlsim plot                                         # 400 trials, seed 7
  rlsim plot --trials 1000 --output docs/sev.svg     # SVG output
  rlsim plot --profiles groups.yaml --seed 3 --open  # custom groups`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := newCmdLogger(cmd, cfg)

			summary, err := runGroups(cmd, cfg, logger)
			if err != nil {
				return err
			}

			root, _ := cmd.Flags().GetString("root")
			output, err := pathutil.ResolveUnder(root, cfg.Plot.Output)
			if err != nil {
				return fmt.Errorf("invalid output path: %w", err)
			}

			opts := visualization.DefaultChartOptions()
			opts.Width = cfg.Plot.Width
			opts.Height = cfg.Plot.Height
			if err := visualization.WriteChart(output, visualization.BarsFromSummary(summary), opts); err != nil {
				return fmt.Errorf("failed to write figure: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved figure to %s\n", output)

			if open, _ := cmd.Flags().GetBool("open"); open {
				if err := visualization.Open(output); err != nil {
					logger.Warn("could not open figure", "error", err)
				}
			}
			return nil
		},
	}

	addSimulationFlags(cmd)
	cmd.Flags().String("output", "", "Output chart path (default from config, docs/severity_mean_rewards.png)")
	cmd.Flags().Bool("open", false, "Open the chart in the default viewer")

	return cmd
}
