package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rlsim",
		Short: "Two-choice bandit simulator for severity groups",
		Long: `rlsim simulates an epsilon-greedy agent on a two-choice bandit with a
stable arm and a volatile arm, and compares mean reward across named
severity profiles (experimental conditions with different exploration rates).

Runs are reproducible: the same seed, trial count, and profile order always
produce the same rewards.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("root", ".", "Project root directory for relative output paths")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.rlsim/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: info, debug, or trace")

	rootCmd.AddCommand(
		newVersionCmd(),
		newPlotCmd(),
		newSimulateCmd(),
		newProfilesCmd(),
		newConfigCmd(),
	)

	return rootCmd
}
