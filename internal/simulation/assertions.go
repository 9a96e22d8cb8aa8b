package simulation

import (
	"math"
	"testing"
)

// AssertLength asserts that a reward series has exactly want entries.
func AssertLength(t *testing.T, rewards []float64, want int) {
	t.Helper()
	if len(rewards) != want {
		t.Errorf("AssertLength: got %d rewards, want %d", len(rewards), want)
	}
}

// AssertMeanNear asserts that the mean of rewards lies within tol of want.
func AssertMeanNear(t *testing.T, rewards []float64, want, tol float64) {
	t.Helper()
	if len(rewards) == 0 {
		t.Errorf("AssertMeanNear: empty reward series")
		return
	}
	var sum float64
	for _, r := range rewards {
		sum += r
	}
	got := sum / float64(len(rewards))
	if math.Abs(got-want) > tol {
		t.Errorf("AssertMeanNear: mean %.6f not within %.6f of %.6f", got, tol, want)
	}
}

// AssertIdentical asserts that two reward series match value for value.
func AssertIdentical(t *testing.T, a, b []float64) {
	t.Helper()
	if len(a) != len(b) {
		t.Errorf("AssertIdentical: lengths differ: %d vs %d", len(a), len(b))
		return
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("AssertIdentical: index %d differs: %v vs %v", i, a[i], b[i])
			return
		}
	}
}

// AssertEstimatesMatch asserts that the final estimates of a session equal
// the per-arm sample means of its trials.
func AssertEstimatesMatch(t *testing.T, result *SessionResult, tol float64) {
	t.Helper()
	var sums [2]float64
	var counts [2]int
	for _, tr := range result.Trials {
		sums[tr.Action] += tr.Reward
		counts[tr.Action]++
	}
	for arm := 0; arm < 2; arm++ {
		if counts[arm] != result.Counts[arm] {
			t.Errorf("AssertEstimatesMatch: arm %d count %d, result says %d", arm, counts[arm], result.Counts[arm])
			continue
		}
		if counts[arm] == 0 {
			if result.Estimates[arm] != 0 {
				t.Errorf("AssertEstimatesMatch: unpulled arm %d has estimate %v", arm, result.Estimates[arm])
			}
			continue
		}
		mean := sums[arm] / float64(counts[arm])
		if math.Abs(mean-result.Estimates[arm]) > tol {
			t.Errorf("AssertEstimatesMatch: arm %d estimate %.9f, sample mean %.9f", arm, result.Estimates[arm], mean)
		}
	}
}
