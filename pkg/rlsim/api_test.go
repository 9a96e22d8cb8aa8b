package rlsim

import (
	"errors"
	"testing"
)

func TestSimulateSeverityGroups(t *testing.T) {
	summary, err := SimulateSeverityGroups(5, []SeverityProfile{LowSeverity(), HighSeverity()}, Seed(0))
	if err != nil {
		t.Fatalf("SimulateSeverityGroups: %v", err)
	}
	if summary.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", summary.Len())
	}
	for _, name := range []string{"low", "high"} {
		r, ok := summary.Get(name)
		if !ok || len(r.Rewards) != 5 {
			t.Errorf("%s result = %+v, ok=%v", name, r, ok)
		}
	}

	if _, err := SimulateSeverityGroups(5, nil, Seed(0)); !errors.Is(err, ErrNoProfiles) {
		t.Errorf("empty profiles error = %v, want ErrNoProfiles", err)
	}
}

func TestCustomBanditSession(t *testing.T) {
	volatile, err := NewVolatile([]State{{Mean: 0.9, Noise: 0.05}, {Mean: 0.3, Noise: 0.05}}, 10)
	if err != nil {
		t.Fatalf("NewVolatile: %v", err)
	}
	b := NewBandit(NewStable(0.7, 0.05), volatile)

	a, err := SimulateSession(b, 20, 0.1, NewRand(1))
	if err != nil {
		t.Fatalf("SimulateSession: %v", err)
	}
	c, err := SimulateSession(b, 20, 0.1, NewRand(1))
	if err != nil {
		t.Fatalf("SimulateSession: %v", err)
	}
	for i := range a {
		if a[i] != c[i] {
			t.Fatalf("reward %d differs: %v vs %v", i, a[i], c[i])
		}
	}

	if _, err := b.Pull(Action(2), 0, NewRand(0)); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("Pull(2) error = %v, want ErrInvalidAction", err)
	}
	if _, err := NewVolatile(nil, 5); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("NewVolatile(nil) error = %v, want ErrInvalidConfig", err)
	}
}

func TestNewDefaultBandit(t *testing.T) {
	b, err := NewDefaultBandit()
	if err != nil {
		t.Fatalf("NewDefaultBandit: %v", err)
	}
	res, err := RunSession(b, SessionConfig{Trials: 12, Epsilon: 0.2, Rng: NewRand(3)})
	if err != nil {
		t.Fatalf("RunSession: %v", err)
	}
	if len(res.Trials) != 12 {
		t.Errorf("trials = %d, want 12", len(res.Trials))
	}
}

func TestDefaultBandit_NegativeStep(t *testing.T) {
	b, err := NewDefaultBandit()
	if err != nil {
		t.Fatalf("NewDefaultBandit: %v", err)
	}
	for _, step := range []int{-1, -10, -11, -1000} {
		if _, err := b.Pull(ActionVolatile, step, NewRand(0)); err != nil {
			t.Errorf("Pull(volatile, %d): %v", step, err)
		}
	}
}

func TestSeverityProfiles_Isolated(t *testing.T) {
	p := LowSeverity()
	p.VolatileStates[0].Mean = 42
	p.Epsilon = 1

	fresh := LowSeverity()
	if fresh.VolatileStates[0].Mean != 0.9 || fresh.Epsilon != 0.1 {
		t.Errorf("LowSeverity() = %v after editing an earlier copy", fresh)
	}
}
