package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dthphuong/copilot-status/internal/core/model"
)

func TestComputeSnapshotZeroStats(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	snapshot := ComputeSnapshot(model.NewDailyStats("2024-01-15"), now)

	assert.Equal(t, float64(0), snapshot.Rate.TokensPerMinute)
	assert.Equal(t, float64(0), snapshot.Rate.CostPerHour)
	assert.Equal(t, float64(0), snapshot.ContextUsage)
	assert.Equal(t, now.Unix(), snapshot.RefreshedAt)
}

func TestComputeSnapshotBurnRate(t *testing.T) {
	stats := model.NewDailyStats("2024-01-15")
	stats.TotalTokens = 6000
	stats.TotalCost = 0.006
	stats.TotalDuration = 600 // 10 minutes
	stats.UniqueSessions = 1

	snapshot := ComputeSnapshot(stats, time.Now())

	assert.InDelta(t, 600, snapshot.Rate.TokensPerMinute, 1e-9)
	assert.InDelta(t, 0.0006, snapshot.Rate.CostPerMinute, 1e-12)
	assert.InDelta(t, 0.036, snapshot.Rate.CostPerHour, 1e-12)
}

func TestComputeSnapshotShortDurationFloor(t *testing.T) {
	// Under a minute of activity is treated as one minute so the rate
	// cannot blow up on a fresh day.
	stats := model.NewDailyStats("2024-01-15")
	stats.TotalTokens = 100
	stats.TotalDuration = 5
	stats.UniqueSessions = 1

	snapshot := ComputeSnapshot(stats, time.Now())

	assert.InDelta(t, 100, snapshot.Rate.TokensPerMinute, 1e-9)
}

func TestComputeSnapshotContextUsage(t *testing.T) {
	tests := []struct {
		name     string
		tokens   int
		sessions int
		expected float64
	}{
		{name: "no sessions", tokens: 0, sessions: 0, expected: 0},
		{name: "half window", tokens: ContextWindowTokens / 2, sessions: 1, expected: 50},
		{name: "quarter window across two sessions", tokens: ContextWindowTokens / 2, sessions: 2, expected: 25},
		{name: "clamped at full", tokens: ContextWindowTokens * 3, sessions: 1, expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := model.NewDailyStats("2024-01-15")
			stats.TotalTokens = tt.tokens
			stats.UniqueSessions = tt.sessions

			snapshot := ComputeSnapshot(stats, time.Now())
			assert.InDelta(t, tt.expected, snapshot.ContextUsage, 1e-9)
		})
	}
}
