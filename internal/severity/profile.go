// Package severity models named experimental conditions ("severity groups")
// and runs one epsilon-greedy session per group with independently seeded
// randomness.
package severity

import (
	"fmt"

	"github.com/nvandessel/rlsim/internal/bandit"
	"github.com/nvandessel/rlsim/internal/constants"
	"github.com/nvandessel/rlsim/internal/schedule"
)

// Profile is an immutable parameter bundle for one severity group.
type Profile struct {
	Name           string           `json:"name" yaml:"name"`
	Epsilon        float64          `json:"epsilon" yaml:"epsilon"`
	StableMean     float64          `json:"stable_mean" yaml:"stable_mean"`
	StableNoise    float64          `json:"stable_noise" yaml:"stable_noise"`
	VolatileStates []schedule.State `json:"volatile_states" yaml:"volatile_states"`
	SwitchEvery    int              `json:"switch_every" yaml:"switch_every"`
}

// LowSeverity returns the low-severity group: rare exploration and a richer
// stable arm. Each call returns an independent copy.
func LowSeverity() Profile {
	return Profile{
		Name:        "low",
		Epsilon:     constants.DefaultEpsilon,
		StableMean:  constants.DefaultStableMean,
		StableNoise: constants.DefaultStableNoise,
		VolatileStates: []schedule.State{
			{Mean: 0.9, Noise: 0.05},
			{Mean: 0.3, Noise: 0.05},
		},
		SwitchEvery: constants.DefaultSwitchEvery,
	}
}

// HighSeverity returns the high-severity group: more exploration and leaner,
// noisier arms. Each call returns an independent copy.
func HighSeverity() Profile {
	return Profile{
		Name:        "high",
		Epsilon:     0.25,
		StableMean:  0.6,
		StableNoise: constants.DefaultStableNoise,
		VolatileStates: []schedule.State{
			{Mean: 0.75, Noise: 0.07},
			{Mean: 0.25, Noise: 0.07},
		},
		SwitchEvery: constants.DefaultSwitchEvery,
	}
}

// DefaultProfiles returns the built-in groups in plotting order.
func DefaultProfiles() []Profile {
	return []Profile{LowSeverity(), HighSeverity()}
}

// NewProfile returns a profile with the given name and epsilon and the
// low-severity schedule parameters.
func NewProfile(name string, epsilon float64) Profile {
	p := LowSeverity()
	p.Name = name
	p.Epsilon = epsilon
	return p
}

// Clone returns a copy of p that shares no memory with it.
func (p Profile) Clone() Profile {
	p.VolatileStates = append([]schedule.State(nil), p.VolatileStates...)
	return p
}

// BuildBandit returns a fresh bandit for this profile. No state is shared
// between bandits built from the same profile.
func (p Profile) BuildBandit() (*bandit.TwoChoice, error) {
	b, err := bandit.NewDefault(bandit.Options{
		StableMean:     p.StableMean,
		StableNoise:    p.StableNoise,
		VolatileStates: p.VolatileStates,
		SwitchEvery:    p.SwitchEvery,
	})
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", p.Name, err)
	}
	return b, nil
}

// String returns a compact description for logs and listings.
func (p Profile) String() string {
	return fmt.Sprintf("%s(eps=%.2f, stable=%.2f±%.2f, states=%d, switch=%d)",
		p.Name, p.Epsilon, p.StableMean, p.StableNoise, len(p.VolatileStates), p.SwitchEvery)
}
