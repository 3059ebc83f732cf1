// Package aggregator folds per-session metrics into daily summaries.
package aggregator

import (
	"fmt"
	"time"

	"github.com/dthphuong/copilot-status/internal/core/metrics"
	"github.com/dthphuong/copilot-status/internal/core/model"
	"github.com/dthphuong/copilot-status/internal/data/parser"
	"github.com/dthphuong/copilot-status/internal/data/scanner"
	"github.com/dthphuong/copilot-status/internal/util"
)

// DateLayout is the calendar date format used for filtering and reporting.
const DateLayout = "2006-01-02"

// Aggregator computes DailyStats from the session directory. Every call is
// a full rescan; no derived state is carried between calls, so repeated
// queries over an unchanged directory yield identical results.
type Aggregator struct {
	scanner *scanner.FileScanner
	now     func() time.Time
}

// New creates an Aggregator over the given session directory.
func New(dataDir string) *Aggregator {
	return &Aggregator{
		scanner: scanner.NewFileScanner(dataDir),
		now:     time.Now,
	}
}

// WithClock overrides the time source. Used by tests to pin "now".
func (a *Aggregator) WithClock(now func() time.Time) *Aggregator {
	a.now = now
	return a
}

// AggregateDaily produces the DailyStats for one calendar date
// (YYYY-MM-DD). Per-file failures are logged and skipped; the result is
// always a fully populated DailyStats, down to the empty all-zero shape
// when nothing matches.
func (a *Aggregator) AggregateDaily(date string) (*model.DailyStats, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", date, err)
	}

	stats := model.NewDailyStats(date)
	files := a.scanner.Scan()

	for _, file := range files {
		session, err := parser.Load(file)
		if err != nil {
			// One corrupt file must never abort the scan of the rest.
			util.LogWarnf("Skipping session file %s: %v", file, err)
			continue
		}

		start, ok := a.matchesDate(session, date)
		if !ok {
			continue
		}

		m := metrics.Estimate(session, a.now())
		a.fold(stats, m, start)
	}

	a.finalize(stats)
	return stats, nil
}

// matchesDate reports whether the session belongs to the target date. A
// session without a parsable startTime is excluded but not fatal; a future
// startTime is suspicious and excluded from every date.
func (a *Aggregator) matchesDate(session *model.Session, date string) (time.Time, bool) {
	if session.StartTime == "" {
		util.LogWarnf("Session %s has no startTime, excluded from aggregation", session.SessionID)
		return time.Time{}, false
	}

	start, err := time.Parse(time.RFC3339, session.StartTime)
	if err != nil {
		util.LogWarnf("Session %s has unparsable startTime %q: %v", session.SessionID, session.StartTime, err)
		return time.Time{}, false
	}

	if start.After(a.now()) {
		util.LogWarnf("Session %s has a future startTime %s, excluded as suspicious",
			session.SessionID, session.StartTime)
		return time.Time{}, false
	}

	if start.UTC().Format(DateLayout) != date {
		return time.Time{}, false
	}
	return start, true
}

// fold accumulates one session's metrics into the daily totals and its
// start-hour bucket.
func (a *Aggregator) fold(stats *model.DailyStats, m model.SessionMetrics, start time.Time) {
	stats.UniqueSessions++
	stats.TotalTokens += m.Tokens
	stats.TotalPrompts += m.Prompts
	stats.TotalDuration += m.Duration

	hour := util.GetTimeProvider().In(start).Hour()
	bucket := stats.HourlyBreakdown[model.HourKey(hour)]
	bucket.Prompts += m.Prompts
	bucket.Tokens += m.Tokens
	bucket.Cost += float64(m.Tokens) * model.CostPerToken
	bucket.Duration += m.Duration
}

// finalize computes the derived figures once all sessions are folded in.
func (a *Aggregator) finalize(stats *model.DailyStats) {
	stats.TotalCost = float64(stats.TotalTokens) * model.CostPerToken

	if stats.TotalPrompts > 0 {
		stats.AveragePromptTokens = float64(stats.TotalTokens) / float64(stats.TotalPrompts)
	}
	// Legacy formula kept bit-for-bit for compatibility with existing
	// exports: total minus the per-prompt average, not a per-prompt
	// completion figure.
	stats.AverageCompletionTokens = float64(stats.TotalTokens) - stats.AveragePromptTokens

	// Session transcripts carry no per-model attribution; report a single
	// synthetic entry so the output shape matches the event path.
	if stats.UniqueSessions > 0 {
		stats.Models[model.ModelLabel] = stats.TotalPrompts
	}
}
