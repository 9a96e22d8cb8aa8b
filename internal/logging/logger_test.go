package logging

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nvandessel/rlsim/internal/bandit"
	"github.com/nvandessel/rlsim/internal/simulation"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  slog.Level
	}{
		{"info", "info", slog.LevelInfo},
		{"debug", "debug", slog.LevelDebug},
		{"trace", "trace", LevelTrace},
		{"uppercase DEBUG", "DEBUG", slog.LevelDebug},
		{"padded trace", "  trace ", LevelTrace},
		{"unknown defaults to info", "verbose", slog.LevelInfo},
		{"empty defaults to info", "", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		level      string
		logAtDebug bool
	}{
		{"info", false},
		{"debug", true},
		{"trace", true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(tt.level, &buf)

			logger.Debug("debug message")
			if got := strings.Contains(buf.String(), "debug message"); got != tt.logAtDebug {
				t.Errorf("debug visible = %v, want %v", got, tt.logAtDebug)
			}

			buf.Reset()
			logger.Info("info message")
			if !strings.Contains(buf.String(), "info message") {
				t.Errorf("info message missing at level %s", tt.level)
			}
		})
	}
}

func TestNewLogger_TraceLabel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("trace", &buf)
	logger.Log(context.Background(), LevelTrace, "very verbose")

	if !strings.Contains(buf.String(), "level=TRACE") {
		t.Errorf("expected TRACE label, got %q", buf.String())
	}
}

func sampleTrial(step int) simulation.Trial {
	return simulation.Trial{
		Step:      step,
		Action:    bandit.ActionVolatile,
		Explored:  true,
		Reward:    0.5,
		Estimates: [2]float64{0, 0.5},
	}
}

func readDecisions(t *testing.T, dir string) []Decision {
	t.Helper()
	f, err := os.Open(filepath.Join(dir, DecisionFile))
	if err != nil {
		t.Fatalf("open decisions: %v", err)
	}
	defer f.Close()

	var out []Decision
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var d Decision
		if err := json.Unmarshal(sc.Bytes(), &d); err != nil {
			t.Fatalf("parse line %q: %v", sc.Text(), err)
		}
		out = append(out, d)
	}
	return out
}

func TestNewDecisionLogger_InfoLevel(t *testing.T) {
	dir := t.TempDir()
	dl := NewDecisionLogger(dir, "info")
	if dl != nil {
		t.Fatal("expected nil DecisionLogger at info level")
	}

	dl.LogTrial("low", sampleTrial(0))
	if dl.TrialObserver() != nil {
		t.Error("expected nil observer from nil logger")
	}

	if _, err := os.Stat(filepath.Join(dir, DecisionFile)); err == nil {
		t.Error("decisions file should not exist at info level")
	}
}

func TestDecisionLogger_DebugOmitsEstimates(t *testing.T) {
	dir := t.TempDir()
	dl := NewDecisionLogger(dir, "debug")
	dl.LogTrial("low", sampleTrial(0))
	dl.LogTrial("low", sampleTrial(1))
	dl.Close()

	got := readDecisions(t, dir)
	if len(got) != 2 {
		t.Fatalf("got %d decisions, want 2", len(got))
	}
	if got[1].Step != 1 || got[1].Profile != "low" || got[1].Action != 1 || !got[1].Explored {
		t.Errorf("decision = %+v", got[1])
	}
	if got[0].Estimates != nil {
		t.Error("debug level should not record estimates")
	}
}

func TestDecisionLogger_TraceRecordsEstimates(t *testing.T) {
	dir := t.TempDir()
	dl := NewDecisionLogger(dir, "trace")
	dl.TrialObserver()("high", sampleTrial(3))
	dl.Close()

	got := readDecisions(t, dir)
	if len(got) != 1 {
		t.Fatalf("got %d decisions, want 1", len(got))
	}
	if got[0].Estimates == nil || got[0].Estimates[1] != 0.5 {
		t.Errorf("estimates = %v, want [0 0.5]", got[0].Estimates)
	}
}

func TestDecisionLogger_LogAfterClose(t *testing.T) {
	dir := t.TempDir()
	dl := NewDecisionLogger(dir, "debug")
	dl.LogTrial("low", sampleTrial(0))
	dl.Close()
	dl.LogTrial("low", sampleTrial(1))
	dl.Close()

	if got := readDecisions(t, dir); len(got) != 1 {
		t.Errorf("got %d decisions after close, want 1", len(got))
	}
}

func TestNewDecisionLogger_CreatesDirWithPrivatePerms(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sub", "dir")
	dl := NewDecisionLogger(dir, "debug")
	if dl == nil {
		t.Fatal("expected non-nil DecisionLogger when dir needs creation")
	}
	dl.LogTrial("low", sampleTrial(0))
	dl.Close()

	info, err := os.Stat(filepath.Join(dir, DecisionFile))
	if err != nil {
		t.Fatalf("stat decisions: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file permissions = %o, want 0600", perm)
	}
}
