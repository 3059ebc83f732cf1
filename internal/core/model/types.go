package model

import "fmt"

// SessionMetrics holds the per-session figures derived from one transcript.
type SessionMetrics struct {
	SessionID         string `json:"sessionId"`
	StartTime         string `json:"startTime,omitempty"`
	EndTime           string `json:"endTime,omitempty"`
	Duration          int64  `json:"duration"` // whole seconds
	Tokens            int    `json:"tokens"`
	Prompts           int    `json:"prompts"` // user-message count
	Messages          int    `json:"messages"`
	ToolCalls         int    `json:"toolCalls"`
	UserMessages      int    `json:"userMessages"`
	AssistantMessages int    `json:"assistantMessages"`
	ToolMessages      int    `json:"toolMessages"`
}

// HourlyStat is one bucket of the 24-hour activity histogram.
type HourlyStat struct {
	Prompts  int     `json:"prompts"`
	Tokens   int     `json:"tokens"`
	Cost     float64 `json:"cost"`
	Duration int64   `json:"duration"`
}

// DailyStats is the aggregated result for one calendar date. The hourly
// breakdown always carries all 24 keys "00".."23", zero-filled.
type DailyStats struct {
	Date                    string                 `json:"date"`
	TotalPrompts            int                    `json:"totalPrompts"`
	TotalTokens             int                    `json:"totalTokens"`
	TotalCost               float64                `json:"totalCost"`
	AveragePromptTokens     float64                `json:"averagePromptTokens"`
	AverageCompletionTokens float64                `json:"averageCompletionTokens"`
	TotalDuration           int64                  `json:"totalDuration"`
	UniqueSessions          int                    `json:"uniqueSessions"`
	Commands                map[string]int         `json:"commands"`
	Models                  map[string]int         `json:"models"`
	HourlyBreakdown         map[string]*HourlyStat `json:"hourlyBreakdown"`
}

// NewDailyStats returns the deterministic empty shape for a date: zero
// totals, empty maps, and every hour bucket present.
func NewDailyStats(date string) *DailyStats {
	stats := &DailyStats{
		Date:            date,
		Commands:        make(map[string]int),
		Models:          make(map[string]int),
		HourlyBreakdown: make(map[string]*HourlyStat, 24),
	}
	for h := 0; h < 24; h++ {
		stats.HourlyBreakdown[HourKey(h)] = &HourlyStat{}
	}
	return stats
}

// HourKey formats an hour-of-day as the two-digit bucket key.
func HourKey(hour int) string {
	return fmt.Sprintf("%02d", hour)
}

// UsageEvent is one discrete logged interaction in the usage log. One
// physical log line holds one event; events are immutable once written.
type UsageEvent struct {
	Timestamp        string  `json:"timestamp"`
	Model            string  `json:"model"`
	PromptTokens     int     `json:"promptTokens"`
	CompletionTokens int     `json:"completionTokens"`
	TotalTokens      int     `json:"totalTokens"`
	Cost             float64 `json:"cost"`
	SessionID        string  `json:"sessionId"`
	Command          string  `json:"command"`
	Duration         int64   `json:"duration"`
}

// BurnRate is the consumption rate extrapolated from observed usage.
type BurnRate struct {
	TokensPerMinute float64
	CostPerHour     float64
	CostPerMinute   float64
}

// DashboardSnapshot is one computed dashboard frame. Compute and render are
// decoupled: the scheduler produces a snapshot, the display draws it.
type DashboardSnapshot struct {
	Stats        *DailyStats
	Rate         BurnRate
	ContextUsage float64 // clamped 0..100
	RefreshedAt  int64   // Unix timestamp
}

// ClampPercentage bounds a percentage estimate into [0, 100].
func ClampPercentage(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
