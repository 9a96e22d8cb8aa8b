package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/nvandessel/rlsim/internal/config"
	"github.com/nvandessel/rlsim/internal/logging"
	"github.com/nvandessel/rlsim/internal/pathutil"
	"github.com/nvandessel/rlsim/internal/severity"
	"github.com/spf13/cobra"
)

// addSimulationFlags registers the flags shared by plot and simulate.
func addSimulationFlags(cmd *cobra.Command) {
	cmd.Flags().Int("trials", 0, "Number of trials to simulate per group (default from config, 400)")
	cmd.Flags().Int64("seed", 0, "Random seed for reproducibility (default from config, 7)")
	cmd.Flags().String("profiles", "", "YAML file listing severity profiles (default: low and high)")
}

// loadConfig resolves configuration from --config or the default locations,
// then applies command-line overrides and validates the result.
func loadConfig(cmd *cobra.Command) (*config.RLSimConfig, error) {
	path, _ := cmd.Flags().GetString("config")

	cfg, err := config.LoadPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	if f := cmd.Flags().Lookup("trials"); f != nil && f.Changed {
		cfg.Simulation.Trials, _ = cmd.Flags().GetInt("trials")
	}
	if f := cmd.Flags().Lookup("seed"); f != nil && f.Changed {
		cfg.Simulation.Seed, _ = cmd.Flags().GetInt64("seed")
	}
	if f := cmd.Flags().Lookup("output"); f != nil && f.Changed {
		cfg.Plot.Output, _ = cmd.Flags().GetString("output")
	}
	if f := cmd.Flags().Lookup("decision-dir"); f != nil && f.Changed {
		cfg.Logging.DecisionDir, _ = cmd.Flags().GetString("decision-dir")
	}
	if f := cmd.Flags().Lookup("profiles"); f != nil && f.Changed {
		profilesPath, _ := cmd.Flags().GetString("profiles")
		profiles, err := config.LoadProfilesFile(profilesPath)
		if err != nil {
			return nil, err
		}
		cfg.Simulation.Profiles = profiles
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// runGroups simulates the configured profiles, tracing trials to the
// decision log when the log level asks for it.
func runGroups(cmd *cobra.Command, cfg *config.RLSimConfig, logger *slog.Logger) (*severity.Summary, error) {
	root, _ := cmd.Flags().GetString("root")

	logCfg := cfg.Logging
	if !filepath.IsAbs(logCfg.DecisionDir) {
		logCfg.DecisionDir = filepath.Join(root, logCfg.DecisionDir)
	}
	decisions := logCfg.NewDecisionLogger()
	defer decisions.Close()

	profiles := cfg.Simulation.SeverityProfiles()
	logger.Debug("simulating severity groups",
		"trials", cfg.Simulation.Trials,
		"seed", cfg.Simulation.Seed,
		"profiles", len(profiles),
	)

	summary, err := severity.SimulateGroups(cfg.Simulation.Trials, profiles, severity.Options{
		Seed:     severity.Seed(cfg.Simulation.Seed),
		Logger:   logger,
		Observer: decisions.TrialObserver(),
	})
	if err != nil {
		return nil, fmt.Errorf("simulation failed: %w", err)
	}
	if decisions != nil {
		logger.Debug("wrote decision log", "path", pathutil.RedactPath(filepath.Join(logCfg.DecisionDir, logging.DecisionFile)))
	}
	return summary, nil
}

func newCmdLogger(cmd *cobra.Command, cfg *config.RLSimConfig) *slog.Logger {
	return logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())
}
