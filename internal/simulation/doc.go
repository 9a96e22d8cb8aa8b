// Package simulation runs epsilon-greedy sessions against a two-choice bandit.
//
// A session explores with probability epsilon and otherwise exploits the arm
// with the higher running value estimate, breaking ties uniformly at random.
// Estimates are incremental sample means. Every random draw comes from the
// supplied *rand.Rand, so a session is a pure function of its bandit, trial
// count, epsilon, and random stream.
//
// Usage:
//
//	b, _ := bandit.NewDefault(bandit.DefaultOptions())
//	rng := rand.New(rand.NewSource(0))
//	rewards, err := simulation.SimulateSession(b, 400, 0.1, rng)
//
// RunSession returns the same rewards together with the per-trial decisions
// and the final estimates, and can report each trial to an Observer.
package simulation
