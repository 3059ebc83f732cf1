package usagelog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dthphuong/copilot-status/internal/core/model"
)

func TestAggregateDailyEventCounts(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "usage.log"))

	events := []model.UsageEvent{
		{Timestamp: "2024-01-15T10:00:00Z", Model: "copilot", TotalTokens: 100, Cost: 0.0001, SessionID: "s1", Command: "explain", Duration: 30},
		{Timestamp: "2024-01-15T10:30:00Z", Model: "copilot", TotalTokens: 50, Cost: 0.00005, SessionID: "s1", Command: "fix", Duration: 10},
		{Timestamp: "2024-01-15T18:00:00Z", Model: "gpt-4", TotalTokens: 50, Cost: 0.00005, SessionID: "s2", Command: "explain", Duration: 20},
		{Timestamp: "2024-01-16T00:00:00Z", Model: "copilot", TotalTokens: 999, Cost: 0.001, SessionID: "s3", Command: "doc", Duration: 5},
	}
	for _, event := range events {
		require.NoError(t, store.Append(event))
	}

	stats, err := store.AggregateDaily("2024-01-15")
	require.NoError(t, err)

	// totalPrompts is the event count on this path, not user messages.
	assert.Equal(t, 3, stats.TotalPrompts)
	assert.Equal(t, 200, stats.TotalTokens)
	assert.InDelta(t, 0.0002, stats.TotalCost, 1e-12)
	assert.Equal(t, int64(60), stats.TotalDuration)
	assert.Equal(t, 2, stats.UniqueSessions)

	assert.Equal(t, map[string]int{"explain": 2, "fix": 1}, stats.Commands)
	assert.Equal(t, map[string]int{"copilot": 2, "gpt-4": 1}, stats.Models)

	assert.InDelta(t, float64(200)/3, stats.AveragePromptTokens, 1e-9)
	assert.InDelta(t, 200-float64(200)/3, stats.AverageCompletionTokens, 1e-9)

	require.Len(t, stats.HourlyBreakdown, 24)
	assert.Equal(t, 2, stats.HourlyBreakdown["10"].Prompts)
	assert.Equal(t, 150, stats.HourlyBreakdown["10"].Tokens)
	assert.Equal(t, 1, stats.HourlyBreakdown["18"].Prompts)
}

func TestAggregateDailyEmptyStore(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "usage.log"))

	stats, err := store.AggregateDaily("2024-01-15")
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalPrompts)
	assert.Equal(t, float64(0), stats.AveragePromptTokens)
	assert.Len(t, stats.HourlyBreakdown, 24)
}

func TestAggregateDailyUnparsableTimestampStillCounted(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "usage.log"))

	// The date prefix matches even though the rest is not RFC 3339; the
	// event counts in the totals but lands in no hour bucket.
	require.NoError(t, store.Append(model.UsageEvent{
		Timestamp: "2024-01-15 around noon", TotalTokens: 10, SessionID: "s1",
	}))

	stats, err := store.AggregateDaily("2024-01-15")
	require.NoError(t, err)

	assert.Equal(t, 1, stats.TotalPrompts)
	assert.Equal(t, 10, stats.TotalTokens)
	bucketPrompts := 0
	for _, bucket := range stats.HourlyBreakdown {
		bucketPrompts += bucket.Prompts
	}
	assert.Equal(t, 0, bucketPrompts)
}
