// Package config provides unified configuration loading for rlsim.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nvandessel/rlsim/internal/constants"
	"github.com/nvandessel/rlsim/internal/logging"
	"github.com/nvandessel/rlsim/internal/pathutil"
	"github.com/nvandessel/rlsim/internal/schedule"
	"github.com/nvandessel/rlsim/internal/severity"
	"gopkg.in/yaml.v3"
)

// RLSimConfig contains all rlsim configuration settings.
type RLSimConfig struct {
	// Simulation contains trial count, seed, and severity profiles.
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`

	// Plot contains settings for the severity bar chart.
	Plot PlotConfig `json:"plot" yaml:"plot"`

	// Logging contains settings for operational and decision logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// SimulationConfig configures group simulation.
type SimulationConfig struct {
	// Trials is the number of trials per severity group. Must be positive.
	Trials int `json:"trials" yaml:"trials"`

	// Seed is the base random seed. The same seed reproduces the same rewards.
	Seed int64 `json:"seed" yaml:"seed"`

	// Profiles lists the severity groups to simulate, in order.
	// Empty means the built-in low and high profiles.
	Profiles []ProfileConfig `json:"profiles,omitempty" yaml:"profiles,omitempty"`
}

// ProfileConfig is the file form of a severity profile. An omitted epsilon
// takes constants.DefaultEpsilon; other omitted fields take the low-severity
// defaults.
type ProfileConfig struct {
	Name           string        `json:"name" yaml:"name"`
	Epsilon        *float64      `json:"epsilon,omitempty" yaml:"epsilon,omitempty"`
	StableMean     *float64      `json:"stable_mean,omitempty" yaml:"stable_mean,omitempty"`
	StableNoise    *float64      `json:"stable_noise,omitempty" yaml:"stable_noise,omitempty"`
	VolatileStates []StateConfig `json:"volatile_states,omitempty" yaml:"volatile_states,omitempty"`
	SwitchEvery    *int          `json:"switch_every,omitempty" yaml:"switch_every,omitempty"`
}

// StateConfig is the file form of one volatile state. An omitted noise takes
// constants.DefaultScheduleNoise.
type StateConfig struct {
	Mean  float64  `json:"mean" yaml:"mean"`
	Noise *float64 `json:"noise,omitempty" yaml:"noise,omitempty"`
}

// State converts s to a schedule state.
func (s StateConfig) State() schedule.State {
	noise := constants.DefaultScheduleNoise
	if s.Noise != nil {
		noise = *s.Noise
	}
	return schedule.State{Mean: s.Mean, Noise: noise}
}

// PlotConfig configures chart output.
type PlotConfig struct {
	// Output is the chart path. The extension (.png or .svg) picks the format.
	Output string `json:"output" yaml:"output"`

	// Width and Height are the chart size in pixels.
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// LoggingConfig configures rlsim's logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	// "debug" enables the per-trial decision log; "trace" adds value estimates.
	Level string `json:"level" yaml:"level"`

	// DecisionDir is where decisions.jsonl is written at debug/trace level.
	DecisionDir string `json:"decision_dir,omitempty" yaml:"decision_dir,omitempty"`
}

// Default returns an RLSimConfig with sensible defaults.
func Default() *RLSimConfig {
	return &RLSimConfig{
		Simulation: SimulationConfig{
			Trials: constants.DefaultTrials,
			Seed:   constants.DefaultSeed,
		},
		Plot: PlotConfig{
			Output: constants.DefaultOutputPath,
			Width:  constants.DefaultChartWidth,
			Height: constants.DefaultChartHeight,
		},
		Logging: LoggingConfig{
			Level:       "info",
			DecisionDir: ".rlsim",
		},
	}
}

// DefaultPath returns ~/.rlsim/config.yaml, or "" if HOME cannot be resolved.
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".rlsim", "config.yaml")
}

// Load loads configuration from the default locations and environment variables.
// Order: defaults -> ~/.rlsim/config.yaml -> environment variables
func Load() (*RLSimConfig, error) {
	config := Default()

	if configPath := DefaultPath(); configPath != "" {
		if _, statErr := os.Stat(configPath); statErr == nil {
			fileConfig, loadErr := LoadFromFile(configPath)
			if loadErr != nil {
				return nil, fmt.Errorf("loading config file: %w", loadErr)
			}
			config = fileConfig
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// LoadPath loads configuration from path, or from the default locations when
// path is empty. Environment variables override the file in both cases.
// Order: defaults -> path (or ~/.rlsim/config.yaml) -> environment variables
func LoadPath(path string) (*RLSimConfig, error) {
	if path == "" {
		return Load()
	}

	config, err := LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	applyEnvOverrides(config)

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file. Fields missing
// from the file keep their defaults.
func LoadFromFile(path string) (*RLSimConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", pathutil.RedactPath(path), err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", pathutil.RedactPath(path), err)
	}

	config.Plot.Output = expandEnvVars(config.Plot.Output)
	config.Logging.DecisionDir = expandEnvVars(config.Logging.DecisionDir)

	return config, nil
}

// LoadProfilesFile reads a YAML list of profiles, as used by --profiles.
func LoadProfilesFile(path string) ([]ProfileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profiles file %s: %w", pathutil.RedactPath(path), err)
	}

	var profiles []ProfileConfig
	if err := yaml.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("parsing profiles file %s: %w", pathutil.RedactPath(path), err)
	}
	if len(profiles) == 0 {
		return nil, fmt.Errorf("profiles file %s: %w", pathutil.RedactPath(path), severity.ErrNoProfiles)
	}
	return profiles, nil
}

// Validate checks that the configuration is valid.
func (c *RLSimConfig) Validate() error {
	if c.Simulation.Trials <= 0 {
		return fmt.Errorf("trials must be positive, got %d", c.Simulation.Trials)
	}

	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return fmt.Errorf("plot size must be positive, got %dx%d", c.Plot.Width, c.Plot.Height)
	}

	switch strings.ToLower(filepath.Ext(c.Plot.Output)) {
	case ".png", ".svg":
	default:
		return fmt.Errorf("plot output must end in .png or .svg, got %q", c.Plot.Output)
	}

	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	seen := make(map[string]bool, len(c.Simulation.Profiles))
	for i, p := range c.Simulation.Profiles {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("profile %d: name is required", i)
		}
		if seen[p.Name] {
			return fmt.Errorf("profile %q: duplicate name", p.Name)
		}
		seen[p.Name] = true
		if p.Epsilon != nil && (*p.Epsilon < 0 || *p.Epsilon > 1) {
			return fmt.Errorf("profile %q: epsilon must be between 0 and 1, got %f", p.Name, *p.Epsilon)
		}
		if p.SwitchEvery != nil && *p.SwitchEvery <= 0 {
			return fmt.Errorf("profile %q: switch_every must be positive, got %d", p.Name, *p.SwitchEvery)
		}
		if err := p.validateFinite(); err != nil {
			return fmt.Errorf("profile %q: %w", p.Name, err)
		}
	}

	return nil
}

// validateFinite rejects NaN and infinite means and noise levels, which would
// produce rewards that cannot be encoded or plotted.
func (p ProfileConfig) validateFinite() error {
	check := func(field string, v *float64) error {
		if v != nil && (math.IsNaN(*v) || math.IsInf(*v, 0)) {
			return fmt.Errorf("%s must be finite, got %v", field, *v)
		}
		return nil
	}
	if err := check("stable_mean", p.StableMean); err != nil {
		return err
	}
	if err := check("stable_noise", p.StableNoise); err != nil {
		return err
	}
	for i, st := range p.VolatileStates {
		mean := st.Mean
		if err := check(fmt.Sprintf("volatile_states[%d].mean", i), &mean); err != nil {
			return err
		}
		if err := check(fmt.Sprintf("volatile_states[%d].noise", i), st.Noise); err != nil {
			return err
		}
	}
	return nil
}

// SeverityProfiles converts the configured profiles, or returns the built-in
// profiles when none are configured.
func (c SimulationConfig) SeverityProfiles() []severity.Profile {
	if len(c.Profiles) == 0 {
		return severity.DefaultProfiles()
	}
	out := make([]severity.Profile, 0, len(c.Profiles))
	for _, p := range c.Profiles {
		out = append(out, p.Profile())
	}
	return out
}

// Profile converts p, filling omitted fields with the defaults.
func (p ProfileConfig) Profile() severity.Profile {
	eps := constants.DefaultEpsilon
	if p.Epsilon != nil {
		eps = *p.Epsilon
	}
	out := severity.NewProfile(p.Name, eps)
	if p.StableMean != nil {
		out.StableMean = *p.StableMean
	}
	if p.StableNoise != nil {
		out.StableNoise = *p.StableNoise
	}
	if len(p.VolatileStates) > 0 {
		out.VolatileStates = make([]schedule.State, 0, len(p.VolatileStates))
		for _, st := range p.VolatileStates {
			out.VolatileStates = append(out.VolatileStates, st.State())
		}
	}
	if p.SwitchEvery != nil {
		out.SwitchEvery = *p.SwitchEvery
	}
	return out
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *RLSimConfig) {
	if v := os.Getenv("RLSIM_TRIALS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Simulation.Trials = n
		}
	}

	if v := os.Getenv("RLSIM_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.Simulation.Seed = n
		}
	}

	if v := os.Getenv("RLSIM_OUTPUT"); v != "" {
		config.Plot.Output = v
	}

	if v := os.Getenv("RLSIM_LOG_LEVEL"); v != "" {
		config.Logging.Level = strings.ToLower(v)
	}

	if v := os.Getenv("RLSIM_DECISION_DIR"); v != "" {
		config.Logging.DecisionDir = v
	}
}

// NewDecisionLogger opens the decision log configured by c, or returns nil
// at info level.
func (c LoggingConfig) NewDecisionLogger() *logging.DecisionLogger {
	return logging.NewDecisionLogger(c.DecisionDir, c.Level)
}

// expandEnvVars expands ${VAR} patterns in a string with environment variable values.
func expandEnvVars(s string) string {
	if !strings.Contains(s, "${") {
		return s
	}
	return os.Expand(s, os.Getenv)
}
