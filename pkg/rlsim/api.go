// Package rlsim is the importable surface of the two-choice bandit simulator.
//
// It re-exports the schedule, bandit, session, and severity-group types from
// the internal packages so other modules can build custom conditions and
// consume the {name: {rewards, mean_reward}} summary.
package rlsim

import (
	"math/rand"

	"github.com/nvandessel/rlsim/internal/bandit"
	"github.com/nvandessel/rlsim/internal/schedule"
	"github.com/nvandessel/rlsim/internal/severity"
	"github.com/nvandessel/rlsim/internal/simulation"
)

type (
	RewardSchedule = schedule.Schedule
	State          = schedule.State
	Stable         = schedule.Stable
	Volatile       = schedule.Volatile

	Action          = bandit.Action
	TwoChoiceBandit = bandit.TwoChoice
	BanditOptions   = bandit.Options

	Trial         = simulation.Trial
	SessionConfig = simulation.SessionConfig
	SessionResult = simulation.SessionResult

	SeverityProfile = severity.Profile
	GroupResult     = severity.GroupResult
	Summary         = severity.Summary
	GroupOptions    = severity.Options
)

const (
	ActionStable   = bandit.ActionStable
	ActionVolatile = bandit.ActionVolatile
)

var (
	ErrInvalidConfig = schedule.ErrInvalidConfig
	ErrInvalidAction = bandit.ErrInvalidAction
	ErrNoProfiles    = severity.ErrNoProfiles
)

// LowSeverity returns a fresh copy of the built-in low-severity profile.
func LowSeverity() SeverityProfile {
	return severity.LowSeverity()
}

// HighSeverity returns a fresh copy of the built-in high-severity profile.
func HighSeverity() SeverityProfile {
	return severity.HighSeverity()
}

// NewStable returns a constant-mean Gaussian schedule.
func NewStable(mean, noise float64) Stable {
	return schedule.NewStable(mean, noise)
}

// NewVolatile returns a schedule cycling through states every switchEvery steps.
func NewVolatile(states []State, switchEvery int) (*Volatile, error) {
	return schedule.NewVolatile(states, switchEvery)
}

// NewBandit pairs a stable-role and a volatile-role schedule.
func NewBandit(stable, volatile RewardSchedule) *TwoChoiceBandit {
	return bandit.New(stable, volatile)
}

// NewDefaultBandit builds the stock stable-vs-volatile bandit.
func NewDefaultBandit() (*TwoChoiceBandit, error) {
	return bandit.NewDefault(bandit.DefaultOptions())
}

// NewRand returns a seeded random source for reproducible sessions.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// SimulateSession runs an epsilon-greedy session and returns its rewards.
func SimulateSession(b *TwoChoiceBandit, trials int, epsilon float64, rng *rand.Rand) ([]float64, error) {
	return simulation.SimulateSession(b, trials, epsilon, rng)
}

// RunSession runs an epsilon-greedy session and returns per-trial detail.
func RunSession(b *TwoChoiceBandit, cfg SessionConfig) (*SessionResult, error) {
	return simulation.RunSession(b, cfg)
}

// SimulateSeverityGroups runs one session per profile. A nil seed gives a
// non-reproducible run.
func SimulateSeverityGroups(trials int, profiles []SeverityProfile, seed *int64) (*Summary, error) {
	return severity.SimulateGroups(trials, profiles, severity.Options{Seed: seed})
}

// Seed returns a pointer to seed for SimulateSeverityGroups.
func Seed(seed int64) *int64 {
	return severity.Seed(seed)
}
