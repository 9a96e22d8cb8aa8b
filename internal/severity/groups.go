package severity

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"github.com/nvandessel/rlsim/internal/simulation"
)

// ErrNoProfiles is returned when SimulateGroups is called without profiles.
var ErrNoProfiles = errors.New("profiles must contain at least one severity profile")

// Options configures SimulateGroups.
type Options struct {
	// Seed seeds the base random source. When nil, the base source is
	// randomly seeded and results are not reproducible.
	Seed *int64

	// Logger receives debug output per profile and duplicate-name warnings.
	// Nil discards.
	Logger *slog.Logger

	// Observer, when non-nil, receives every trial of every profile.
	Observer func(profile string, trial simulation.Trial)
}

// Seed returns a pointer to seed for use in Options.
func Seed(seed int64) *int64 {
	return &seed
}

// SimulateGroups runs one session per profile, in order. Each profile gets a
// fresh bandit and its own random source seeded by one draw from the base
// source, so reordering profiles changes every profile's derived seed.
func SimulateGroups(trials int, profiles []Profile, opts Options) (*Summary, error) {
	if len(profiles) == 0 {
		return nil, ErrNoProfiles
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	baseSeed := rand.Int63()
	if opts.Seed != nil {
		baseSeed = *opts.Seed
	}
	base := rand.New(rand.NewSource(baseSeed))

	summary := newSummary(len(profiles))
	for _, profile := range profiles {
		b, err := profile.BuildBandit()
		if err != nil {
			return nil, err
		}

		profileSeed := base.Int63()
		cfg := simulation.SessionConfig{
			Trials:  trials,
			Epsilon: profile.Epsilon,
			Rng:     rand.New(rand.NewSource(profileSeed)),
		}
		if opts.Observer != nil {
			name := profile.Name
			cfg.Observer = func(tr simulation.Trial) { opts.Observer(name, tr) }
		}

		res, err := simulation.RunSession(b, cfg)
		if err != nil {
			return nil, fmt.Errorf("profile %q: %w", profile.Name, err)
		}

		result := GroupResult{Rewards: res.Rewards, MeanReward: mean(res.Rewards)}
		if summary.set(profile.Name, result) {
			logger.Warn("duplicate profile name, later result replaces earlier", "profile", profile.Name)
		}

		logger.Debug("simulated severity group",
			"profile", profile.Name,
			"seed", profileSeed,
			"trials", len(res.Rewards),
			"mean_reward", result.MeanReward,
			"pulls_stable", res.Counts[0],
			"pulls_volatile", res.Counts[1],
		)
	}

	return summary, nil
}
