package simulation

import (
	"fmt"
	"math/rand"

	"github.com/nvandessel/rlsim/internal/bandit"
)

// Puller is the bandit capability a session needs.
type Puller interface {
	Pull(action bandit.Action, step int, rng *rand.Rand) (float64, error)
}

// Trial records one step of a session.
type Trial struct {
	Step     int           `json:"step"`
	Action   bandit.Action `json:"action"`
	Explored bool          `json:"explored"`
	Reward   float64       `json:"reward"`

	// Estimates holds the value estimates after this trial's update.
	Estimates [2]float64 `json:"estimates"`
}

// Observer is called once per trial, after the estimate update.
type Observer func(Trial)

// SessionConfig configures RunSession.
type SessionConfig struct {
	Trials  int
	Epsilon float64

	// Rng supplies every random draw. When nil, a randomly seeded source is used
	// and the session is not reproducible.
	Rng *rand.Rand

	// Observer, when non-nil, receives each trial as it completes.
	Observer Observer
}

// SessionResult captures the outcome of a session.
type SessionResult struct {
	// Rewards is the reward time series, one entry per trial in order.
	Rewards []float64
	Trials  []Trial

	Estimates [2]float64
	Counts    [2]int
}

// SimulateSession runs an epsilon-greedy session and returns the observed
// rewards. trials <= 0 yields an empty slice.
func SimulateSession(b Puller, trials int, epsilon float64, rng *rand.Rand) ([]float64, error) {
	res, err := RunSession(b, SessionConfig{Trials: trials, Epsilon: epsilon, Rng: rng})
	if err != nil {
		return nil, err
	}
	return res.Rewards, nil
}

// RunSession runs an epsilon-greedy session and returns the full result.
func RunSession(b Puller, cfg SessionConfig) (*SessionResult, error) {
	rng := cfg.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	n := cfg.Trials
	if n < 0 {
		n = 0
	}

	res := &SessionResult{
		Rewards: make([]float64, 0, n),
		Trials:  make([]Trial, 0, n),
	}

	for step := 0; step < n; step++ {
		action, explored := chooseAction(res.Estimates, cfg.Epsilon, rng)

		reward, err := b.Pull(action, step, rng)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", step, err)
		}
		res.Rewards = append(res.Rewards, reward)

		res.Counts[action]++
		count := res.Counts[action]
		if count < 1 {
			count = 1
		}
		res.Estimates[action] += (reward - res.Estimates[action]) / float64(count)

		trial := Trial{
			Step:      step,
			Action:    action,
			Explored:  explored,
			Reward:    reward,
			Estimates: res.Estimates,
		}
		res.Trials = append(res.Trials, trial)
		if cfg.Observer != nil {
			cfg.Observer(trial)
		}
	}

	return res, nil
}

// chooseAction applies the epsilon-greedy rule. The uniform draw always
// happens first; a tie on exploitation costs one more draw.
func chooseAction(estimates [2]float64, epsilon float64, rng *rand.Rand) (bandit.Action, bool) {
	if rng.Float64() < epsilon {
		return bandit.Action(rng.Intn(2)), true
	}
	if estimates[0] == estimates[1] {
		return bandit.Action(rng.Intn(2)), false
	}
	if estimates[1] > estimates[0] {
		return bandit.ActionVolatile, false
	}
	return bandit.ActionStable, false
}
