// Package bandit provides the two-choice bandit used by rlsim sessions.
package bandit

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/nvandessel/rlsim/internal/constants"
	"github.com/nvandessel/rlsim/internal/schedule"
)

// ErrInvalidAction is returned when a pull names an arm other than 0 or 1.
var ErrInvalidAction = errors.New("invalid action")

// Action identifies one of the two arms.
type Action int

const (
	// ActionStable pulls the stable-role schedule.
	ActionStable Action = 0

	// ActionVolatile pulls the volatile-role schedule.
	ActionVolatile Action = 1
)

// Valid reports whether a is one of the two arms.
func (a Action) Valid() bool {
	return a == ActionStable || a == ActionVolatile
}

// String returns the role name of the arm.
func (a Action) String() string {
	switch a {
	case ActionStable:
		return "stable"
	case ActionVolatile:
		return "volatile"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// TwoChoice pairs two schedules. Roles are naming only: either slot may hold
// any schedule.
type TwoChoice struct {
	stable   schedule.Schedule
	volatile schedule.Schedule
}

// New returns a bandit that owns the two given schedules.
func New(stable, volatile schedule.Schedule) *TwoChoice {
	return &TwoChoice{stable: stable, volatile: volatile}
}

// Schedule returns the schedule behind action, or nil for an invalid action.
func (b *TwoChoice) Schedule(action Action) schedule.Schedule {
	switch action {
	case ActionStable:
		return b.stable
	case ActionVolatile:
		return b.volatile
	default:
		return nil
	}
}

// Pull samples the schedule for action at step.
func (b *TwoChoice) Pull(action Action, step int, rng *rand.Rand) (float64, error) {
	if !action.Valid() {
		return 0, fmt.Errorf("%w: must be 0 or 1, got %d", ErrInvalidAction, int(action))
	}
	return b.Schedule(action).Sample(step, rng), nil
}

// Options configures NewDefault.
type Options struct {
	StableMean     float64
	StableNoise    float64
	VolatileStates []schedule.State
	SwitchEvery    int
}

// DefaultVolatileStates are the volatile-role states used when none are given:
// a rich phase followed by a lean phase.
func DefaultVolatileStates() []schedule.State {
	return []schedule.State{
		{Mean: 0.9, Noise: 0.05},
		{Mean: 0.3, Noise: 0.05},
	}
}

// DefaultOptions returns the stock stable-vs-volatile configuration.
func DefaultOptions() Options {
	return Options{
		StableMean:     constants.DefaultStableMean,
		StableNoise:    constants.DefaultStableNoise,
		VolatileStates: DefaultVolatileStates(),
		SwitchEvery:    constants.DefaultSwitchEvery,
	}
}

// NewDefault builds a stable/volatile bandit from opts. Empty VolatileStates
// fall back to DefaultVolatileStates; SwitchEvery is validated as given.
func NewDefault(opts Options) (*TwoChoice, error) {
	states := opts.VolatileStates
	if len(states) == 0 {
		states = DefaultVolatileStates()
	}

	volatile, err := schedule.NewVolatile(states, opts.SwitchEvery)
	if err != nil {
		return nil, fmt.Errorf("building volatile schedule: %w", err)
	}

	return New(schedule.NewStable(opts.StableMean, opts.StableNoise), volatile), nil
}
