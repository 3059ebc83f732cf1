// Package tracker feeds the usage log in the background. On startup it
// processes every session file that already exists, then picks up new
// files as they appear, recording one usage event per session.
package tracker

import (
	"context"
	"time"

	"github.com/dthphuong/copilot-status/internal/core/metrics"
	"github.com/dthphuong/copilot-status/internal/core/model"
	"github.com/dthphuong/copilot-status/internal/data/parser"
	"github.com/dthphuong/copilot-status/internal/data/scanner"
	"github.com/dthphuong/copilot-status/internal/data/usagelog"
	"github.com/dthphuong/copilot-status/internal/util"
)

// Accumulator carries the tracker's running totals between ticks. The
// loop owns the single instance and threads it through Tick; nothing in
// this package keeps state at package level.
type Accumulator struct {
	Seen              map[string]struct{}
	SessionsProcessed int
	EventsAppended    int
	TokensObserved    int
	Ticks             int
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() Accumulator {
	return Accumulator{Seen: make(map[string]struct{})}
}

// Tracker polls the sessions directory and appends usage events to the
// store. A filesystem watcher, when available, shortens the latency of
// pickup; the poll remains authoritative.
type Tracker struct {
	scanner  *scanner.FileScanner
	store    *usagelog.Store
	probe    ActivityProbe
	interval time.Duration
	now      func() time.Time
}

// New creates a Tracker over dataDir writing to store. probe may be nil.
func New(dataDir string, store *usagelog.Store, probe ActivityProbe, interval time.Duration) *Tracker {
	return &Tracker{
		scanner:  scanner.NewFileScanner(dataDir),
		store:    store,
		probe:    probe,
		interval: interval,
		now:      time.Now,
	}
}

// Run executes the tracking loop until ctx is cancelled. The final
// accumulator is returned so the caller can print a closing summary.
func (t *Tracker) Run(ctx context.Context) (Accumulator, error) {
	acc := NewAccumulator()

	if err := t.store.EnsureStore(); err != nil {
		return acc, err
	}

	var hints <-chan FileEvent
	watcher, err := NewFileWatcher(t.scanner.Dir())
	if err != nil {
		util.LogWarnf("Filesystem watcher unavailable, falling back to polling only: %v", err)
	} else {
		defer watcher.Close()
		hints = watcher.Events()
	}

	// Startup pass over everything already on disk.
	acc = t.Tick(acc)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return acc, nil
		case <-ticker.C:
			acc = t.Tick(acc)
		case event, ok := <-hints:
			if !ok {
				hints = nil
				continue
			}
			util.LogDebugf("File change hint: %s (%s)", event.Path, event.Operation)
			acc = t.Tick(acc)
		}
	}
}

// Tick processes all session files not seen in a previous tick, plus any
// probe output, and returns the updated accumulator. A failure on one
// file is logged and does not stop the tick.
func (t *Tracker) Tick(acc Accumulator) Accumulator {
	acc.Ticks++
	now := t.now()

	for _, path := range t.scanner.Scan() {
		if _, done := acc.Seen[path]; done {
			continue
		}
		acc.Seen[path] = struct{}{}

		session, err := parser.Load(path)
		if err != nil {
			util.LogWarnf("Skipping session file %s: %v", path, err)
			continue
		}

		event := sessionEvent(session, now)
		acc.SessionsProcessed++
		acc.TokensObserved += event.TotalTokens

		if err := t.store.Append(event); err == nil {
			acc.EventsAppended++
		}
	}

	if t.probe != nil {
		for _, event := range t.probe.Probe(now) {
			acc.TokensObserved += event.TotalTokens
			if err := t.store.Append(event); err == nil {
				acc.EventsAppended++
			}
		}
	}

	return acc
}

// sessionEvent converts one parsed session into a usage event. The
// timestamp must start with the YYYY-MM-DD date so the store's
// prefix-based date filter works; RFC3339 satisfies that.
func sessionEvent(session *model.Session, now time.Time) model.UsageEvent {
	m := metrics.Estimate(session, now)

	timestamp := session.StartTime
	if timestamp == "" {
		timestamp = now.Format(time.RFC3339)
	}

	var userMessages []model.Message
	for _, msg := range session.ChatMessages {
		if msg.Role == model.RoleUser {
			userMessages = append(userMessages, msg)
		}
	}
	promptTokens := metrics.EstimateTokens(userMessages)
	completionTokens := m.Tokens - promptTokens
	if completionTokens < 0 {
		completionTokens = 0
	}

	return model.UsageEvent{
		Timestamp:        timestamp,
		Model:            model.ModelLabel,
		PromptTokens:     promptTokens,
		CompletionTokens: completionTokens,
		TotalTokens:      m.Tokens,
		Cost:             float64(m.Tokens) * model.CostPerToken,
		SessionID:        session.SessionID,
		Command:          "session",
		Duration:         m.Duration,
	}
}
