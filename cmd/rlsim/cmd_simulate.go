package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/nvandessel/rlsim/internal/constants"
	"github.com/nvandessel/rlsim/internal/severity"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate severity groups and print the summary",
		Long: `Run one epsilon-greedy session per severity profile and print each
group's rewards and mean reward.

With --log-level debug, every trial is also written to decisions.jsonl in
the configured decision directory (trace adds value estimates).

Examples:
  rlsim simulate                         # table of mean rewards
  rlsim simulate --format json           # {name: {rewards, mean_reward}}
  rlsim simulate --trials 50 --seed 0 --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				format = string(constants.FormatJSON)
			}
			outFormat := constants.OutputFormat(format)
			if !outFormat.Valid() {
				return fmt.Errorf("invalid format %q (valid: text, json, yaml)", format)
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			summary, err := runGroups(cmd, cfg, newCmdLogger(cmd, cfg))
			if err != nil {
				return err
			}

			return writeSummary(cmd.OutOrStdout(), outFormat, summary)
		},
	}

	addSimulationFlags(cmd)
	cmd.Flags().String("format", string(constants.FormatText), "Output format: text, json, or yaml")
	cmd.Flags().String("decision-dir", "", "Directory for decisions.jsonl (default from config, .rlsim)")

	return cmd
}

func writeSummary(w io.Writer, format constants.OutputFormat, summary *severity.Summary) error {
	switch format {
	case constants.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	case constants.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(summary); err != nil {
			return err
		}
		return enc.Close()
	default:
		fmt.Fprintf(w, "%-16s %8s %12s\n", "GROUP", "TRIALS", "MEAN REWARD")
		for _, name := range summary.Names() {
			r, _ := summary.Get(name)
			mean := "n/a"
			if !math.IsNaN(r.MeanReward) {
				mean = fmt.Sprintf("%.4f", r.MeanReward)
			}
			fmt.Fprintf(w, "%-16s %8d %12s\n", name, len(r.Rewards), mean)
		}
		return nil
	}
}
