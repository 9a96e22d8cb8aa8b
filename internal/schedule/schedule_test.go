package schedule

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestNewVolatile_Validation(t *testing.T) {
	tests := []struct {
		name        string
		states      []State
		switchEvery int
		wantErr     bool
	}{
		{"empty states", []State{}, 5, true},
		{"nil states", nil, 5, true},
		{"zero switch", []State{{Mean: 0, Noise: 1}}, 0, true},
		{"negative switch", []State{{Mean: 0, Noise: 1}}, -3, true},
		{"single state", []State{{Mean: 0, Noise: 1}}, 1, false},
		{"two states", []State{{Mean: 0.9, Noise: 0.05}, {Mean: 0.3, Noise: 0.05}}, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewVolatile(tt.states, tt.switchEvery)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("expected ErrInvalidConfig, got %v", err)
				}
				if v != nil {
					t.Error("expected nil schedule on error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.SwitchEvery() != tt.switchEvery {
				t.Errorf("SwitchEvery() = %d, want %d", v.SwitchEvery(), tt.switchEvery)
			}
		})
	}
}

func TestNewVolatile_CopiesStates(t *testing.T) {
	states := []State{{Mean: 0.9, Noise: 0}, {Mean: 0.3, Noise: 0}}
	v, err := NewVolatile(states, 10)
	if err != nil {
		t.Fatalf("NewVolatile: %v", err)
	}
	states[0].Mean = -1

	if got := v.States()[0].Mean; got != 0.9 {
		t.Errorf("schedule state mutated through caller slice: mean = %v", got)
	}
}

func TestVolatile_ActiveIndex(t *testing.T) {
	v, err := NewVolatile([]State{{Mean: 1}, {Mean: 2}, {Mean: 3}}, 4)
	if err != nil {
		t.Fatalf("NewVolatile: %v", err)
	}

	tests := []struct {
		step int
		want int
	}{
		{0, 0}, {3, 0}, {4, 1}, {7, 1}, {8, 2}, {11, 2}, {12, 0}, {25, 0}, {29, 1},
		// Negative steps floor, continuing the cycle backwards.
		{-1, 2}, {-4, 2}, {-5, 1}, {-8, 1}, {-9, 0}, {-12, 0}, {-13, 2},
	}
	for _, tt := range tests {
		if got := v.ActiveIndex(tt.step); got != tt.want {
			t.Errorf("ActiveIndex(%d) = %d, want %d", tt.step, got, tt.want)
		}
	}
}

func TestVolatile_SampleCycles(t *testing.T) {
	const tiny = 1e-9
	v, err := NewVolatile([]State{{Mean: 0.9, Noise: 0.05 * tiny}, {Mean: 0.3, Noise: 0.05 * tiny}}, 10)
	if err != nil {
		t.Fatalf("NewVolatile: %v", err)
	}
	rng := rand.New(rand.NewSource(1))

	for step := 0; step < 30; step++ {
		want := 0.9
		if step >= 10 && step < 20 {
			want = 0.3
		}
		got := v.Sample(step, rng)
		if math.Abs(got-want) > 1e-6 {
			t.Errorf("Sample(%d) = %v, want ~%v", step, got, want)
		}
	}
}

func TestStable_IgnoresStep(t *testing.T) {
	s := NewStable(0.7, 0.05)
	a := rand.New(rand.NewSource(42))
	b := rand.New(rand.NewSource(42))

	for i := 0; i < 20; i++ {
		if x, y := s.Sample(i, a), s.Sample(1000+i, b); x != y {
			t.Fatalf("draw %d differs across steps: %v vs %v", i, x, y)
		}
	}
}

func TestStable_ZeroNoiseReturnsMean(t *testing.T) {
	s := NewStable(0.42, 0)
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 10; i++ {
		if got := s.Sample(i, rng); got != 0.42 {
			t.Errorf("Sample = %v, want 0.42", got)
		}
	}
}

func TestStable_MeanConverges(t *testing.T) {
	const (
		n     = 10000
		mean  = 0.7
		noise = 0.05
	)
	s := NewStable(mean, noise)
	rng := rand.New(rand.NewSource(11))

	var sum float64
	for i := 0; i < n; i++ {
		sum += s.Sample(i, rng)
	}
	got := sum / n
	tol := 5 * noise / math.Sqrt(n)
	if math.Abs(got-mean) > tol {
		t.Errorf("sample mean = %.5f, want %.2f +/- %.5f", got, mean, tol)
	}
}

func TestSample_NilRandFallsBack(t *testing.T) {
	s := NewStable(0.5, 0)
	if got := s.Sample(0, nil); got != 0.5 {
		t.Errorf("Sample with nil rng = %v, want 0.5", got)
	}

	v, err := NewVolatile([]State{{Mean: 2, Noise: 0}}, 1)
	if err != nil {
		t.Fatalf("NewVolatile: %v", err)
	}
	if got := v.Sample(7, nil); got != 2 {
		t.Errorf("Volatile Sample with nil rng = %v, want 2", got)
	}
}

func TestVolatile_SampleNegativeStep(t *testing.T) {
	v, err := NewVolatile([]State{{Mean: 0.9}, {Mean: 0.3}}, 10)
	if err != nil {
		t.Fatalf("NewVolatile: %v", err)
	}
	rng := rand.New(rand.NewSource(0))
	if got := v.Sample(-11, rng); got != 0.9 {
		t.Errorf("Sample(-11) = %v, want 0.9", got)
	}
	if got := v.Sample(-1, rng); got != 0.3 {
		t.Errorf("Sample(-1) = %v, want 0.3", got)
	}
}

func TestSample_NilRandDrawsVary(t *testing.T) {
	s := NewStable(0, 1)
	first := s.Sample(0, nil)
	for i := 0; i < 10; i++ {
		if s.Sample(0, nil) != first {
			return
		}
	}
	t.Errorf("10 nil-rng samples all equal %v", first)
}

func TestSample_Deterministic(t *testing.T) {
	v, err := NewVolatile([]State{{Mean: 0.75, Noise: 0.07}, {Mean: 0.25, Noise: 0.07}}, 10)
	if err != nil {
		t.Fatalf("NewVolatile: %v", err)
	}
	a := rand.New(rand.NewSource(99))
	b := rand.New(rand.NewSource(99))
	for step := 0; step < 50; step++ {
		if x, y := v.Sample(step, a), v.Sample(step, b); x != y {
			t.Fatalf("step %d: %v != %v", step, x, y)
		}
	}
}
