// Package logging provides leveled logging and trial tracing for rlsim.
// It offers two complementary outputs:
//   - A leveled slog.Logger for stderr (operational output)
//   - A DecisionLogger that records every bandit trial as JSONL (decisions.jsonl)
package logging

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/nvandessel/rlsim/internal/simulation"
)

// LevelTrace is a custom slog level below Debug. At this level the decision
// log also records the value estimates after every trial.
const LevelTrace = slog.LevelDebug - 4

// DecisionFile is the name of the trial trace written by DecisionLogger.
const DecisionFile = "decisions.jsonl"

// ParseLevel maps a string level name to a slog.Level.
// Supported values: "info", "debug", "trace" (case-insensitive).
// Unknown values default to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "trace":
		return LevelTrace
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a leveled slog.Logger writing to w.
func NewLogger(level string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if l, ok := a.Value.Any().(slog.Level); ok && l == LevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Decision is one line of the decision log.
type Decision struct {
	Profile   string      `json:"profile"`
	Step      int         `json:"step"`
	Action    int         `json:"action"`
	Explored  bool        `json:"explored"`
	Reward    float64     `json:"reward"`
	Estimates *[2]float64 `json:"estimates,omitempty"`
}

// DecisionLogger appends trial decisions to a JSONL file.
// It is safe for concurrent use. A nil DecisionLogger is safe to use;
// all methods are no-ops on nil receiver.
type DecisionLogger struct {
	mu        sync.Mutex
	file      *os.File
	enc       *json.Encoder
	estimates bool
}

// NewDecisionLogger creates a decision logger writing to dir/decisions.jsonl.
// At "info" level (the default) it returns nil and no file is created.
// At "debug" the file is opened for append; "trace" also records estimates.
// Returns nil if the file cannot be opened.
func NewDecisionLogger(dir string, level string) *DecisionLogger {
	lvl := ParseLevel(level)
	if lvl == slog.LevelInfo {
		return nil
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil
	}

	f, err := os.OpenFile(filepath.Join(dir, DecisionFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil
	}

	return &DecisionLogger{
		file:      f,
		enc:       json.NewEncoder(f),
		estimates: lvl <= LevelTrace,
	}
}

// LogTrial writes one trial of the named profile. Safe to call on nil receiver.
func (dl *DecisionLogger) LogTrial(profile string, tr simulation.Trial) {
	if dl == nil {
		return
	}

	d := Decision{
		Profile:  profile,
		Step:     tr.Step,
		Action:   int(tr.Action),
		Explored: tr.Explored,
		Reward:   tr.Reward,
	}

	dl.mu.Lock()
	defer dl.mu.Unlock()

	if dl.file == nil {
		return
	}
	if dl.estimates {
		est := tr.Estimates
		d.Estimates = &est
	}
	_ = dl.enc.Encode(d)
}

// TrialObserver returns a callback suitable for severity.Options.Observer.
// It returns nil for a nil logger so callers can skip observation entirely.
func (dl *DecisionLogger) TrialObserver() func(profile string, tr simulation.Trial) {
	if dl == nil {
		return nil
	}
	return dl.LogTrial
}

// Close closes the underlying file. Safe to call on nil receiver.
func (dl *DecisionLogger) Close() {
	if dl == nil {
		return
	}

	dl.mu.Lock()
	defer dl.mu.Unlock()

	if dl.file != nil {
		dl.file.Close()
		dl.file = nil
	}
}
