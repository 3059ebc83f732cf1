// Package dashboard drives the live-refreshing usage view. Computing a
// snapshot and rendering it are split so the compute half is testable
// without a terminal.
package dashboard

import (
	"time"

	"github.com/dthphuong/copilot-status/internal/core/model"
)

// ContextWindowTokens is the assumed model context size used for the
// context-usage gauge. The gauge is an estimate against the average
// session, not a measurement.
const ContextWindowTokens = 128000

// ComputeSnapshot derives one dashboard frame from today's stats. Pure
// function of its inputs; the scheduler supplies fresh stats each tick.
func ComputeSnapshot(stats *model.DailyStats, now time.Time) *model.DashboardSnapshot {
	return &model.DashboardSnapshot{
		Stats:        stats,
		Rate:         burnRate(stats),
		ContextUsage: contextUsage(stats),
		RefreshedAt:  now.Unix(),
	}
}

// burnRate extrapolates consumption rates from time actually spent in
// sessions today.
func burnRate(stats *model.DailyStats) model.BurnRate {
	minutes := float64(stats.TotalDuration) / 60
	if minutes < 1 {
		minutes = 1
	}

	tokensPerMinute := float64(stats.TotalTokens) / minutes
	costPerMinute := stats.TotalCost / minutes

	return model.BurnRate{
		TokensPerMinute: tokensPerMinute,
		CostPerMinute:   costPerMinute,
		CostPerHour:     costPerMinute * 60,
	}
}

// contextUsage estimates how much of the context window an average session
// consumed today, clamped to a displayable percentage.
func contextUsage(stats *model.DailyStats) float64 {
	if stats.UniqueSessions == 0 {
		return 0
	}
	avgTokens := float64(stats.TotalTokens) / float64(stats.UniqueSessions)
	return model.ClampPercentage(avgTokens / ContextWindowTokens * 100)
}
