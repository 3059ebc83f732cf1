package usagelog

import (
	"time"

	"github.com/dthphuong/copilot-status/internal/core/model"
	"github.com/dthphuong/copilot-status/internal/util"
)

// AggregateDaily folds all logged events for one date into a DailyStats.
// Unlike the session-derived path, totalPrompts here is the event count:
// each event records one logged interaction.
func (s *Store) AggregateDaily(date string) (*model.DailyStats, error) {
	events, err := s.ReadForDate(date)
	if err != nil {
		return nil, err
	}

	stats := model.NewDailyStats(date)
	sessions := make(map[string]struct{})

	for _, event := range events {
		stats.TotalPrompts++
		stats.TotalTokens += event.TotalTokens
		stats.TotalCost += event.Cost
		stats.TotalDuration += event.Duration

		if event.SessionID != "" {
			sessions[event.SessionID] = struct{}{}
		}
		if event.Command != "" {
			stats.Commands[event.Command]++
		}
		if event.Model != "" {
			stats.Models[event.Model]++
		}

		ts, err := time.Parse(time.RFC3339, event.Timestamp)
		if err != nil {
			util.LogDebugf("Usage event with unparsable timestamp %q skipped for hourly bucketing", event.Timestamp)
			continue
		}
		hour := util.GetTimeProvider().In(ts).Hour()
		bucket := stats.HourlyBreakdown[model.HourKey(hour)]
		bucket.Prompts++
		bucket.Tokens += event.TotalTokens
		bucket.Cost += event.Cost
		bucket.Duration += event.Duration
	}

	stats.UniqueSessions = len(sessions)
	if stats.TotalPrompts > 0 {
		stats.AveragePromptTokens = float64(stats.TotalTokens) / float64(stats.TotalPrompts)
	}
	// Same legacy derivation as the session path so both outputs stay
	// shape-compatible.
	stats.AverageCompletionTokens = float64(stats.TotalTokens) - stats.AveragePromptTokens

	return stats, nil
}
