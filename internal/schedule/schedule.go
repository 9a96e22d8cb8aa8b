// Package schedule provides the reward schedules that back each bandit arm.
//
// A schedule turns a time step into a noisy reward. Stable schedules draw from
// one Gaussian; volatile schedules cycle through a fixed list of Gaussian
// states, switching every N steps.
package schedule

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrInvalidConfig is returned when a schedule is constructed with
// parameters it cannot sample from.
var ErrInvalidConfig = errors.New("invalid schedule configuration")

// Schedule produces a reward sample for a time step.
// Implementations draw all randomness from rng and hold no mutable state.
type Schedule interface {
	Sample(step int, rng *rand.Rand) float64
}

// State is one Gaussian reward state: a mean and a standard deviation.
type State struct {
	Mean  float64 `json:"mean" yaml:"mean"`
	Noise float64 `json:"noise" yaml:"noise"`
}

// Stable is a constant-mean Gaussian schedule. It ignores the step.
type Stable struct {
	Mean  float64
	Noise float64
}

// NewStable returns a stable schedule with the given mean and noise.
func NewStable(mean, noise float64) Stable {
	return Stable{Mean: mean, Noise: noise}
}

// Sample draws Gaussian(Mean, Noise) from rng.
func (s Stable) Sample(_ int, rng *rand.Rand) float64 {
	return gaussian(rng, s.Mean, s.Noise)
}

// Volatile cycles through its states, holding each one for switchEvery steps.
type Volatile struct {
	states      []State
	switchEvery int
}

// NewVolatile validates and builds a volatile schedule. The states slice is
// copied, so later changes by the caller do not affect the schedule.
func NewVolatile(states []State, switchEvery int) (*Volatile, error) {
	if len(states) == 0 {
		return nil, fmt.Errorf("%w: volatile schedule requires at least one state", ErrInvalidConfig)
	}
	if switchEvery <= 0 {
		return nil, fmt.Errorf("%w: switch_every must be positive, got %d", ErrInvalidConfig, switchEvery)
	}
	return &Volatile{
		states:      append([]State(nil), states...),
		switchEvery: switchEvery,
	}, nil
}

// States returns a copy of the schedule's states in cycle order.
func (v *Volatile) States() []State {
	return append([]State(nil), v.states...)
}

// SwitchEvery returns the number of steps each state is held.
func (v *Volatile) SwitchEvery() int {
	return v.switchEvery
}

// ActiveIndex returns the index of the state in effect at step. Division and
// modulo both floor, so negative steps continue the cycle backwards.
func (v *Volatile) ActiveIndex(step int) int {
	block := step / v.switchEvery
	if step%v.switchEvery != 0 && step < 0 {
		block--
	}
	n := len(v.states)
	return ((block % n) + n) % n
}

// Sample draws from the Gaussian of the state active at step.
func (v *Volatile) Sample(step int, rng *rand.Rand) float64 {
	st := v.states[v.ActiveIndex(step)]
	return gaussian(rng, st.Mean, st.Noise)
}

// gaussian follows the usual mean + sigma*z form. Noise is not validated:
// zero yields the mean exactly and a negative value mirrors the draw.
// A nil rng draws from the shared top-level source, which is randomly
// seeded and safe for concurrent use.
func gaussian(rng *rand.Rand, mean, noise float64) float64 {
	if rng == nil {
		return mean + noise*rand.NormFloat64()
	}
	return mean + noise*rng.NormFloat64()
}
