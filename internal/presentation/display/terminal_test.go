package display

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dthphuong/copilot-status/internal/core/model"
)

func TestHourlySparkline(t *testing.T) {
	td := NewTerminalDisplay("24h")

	stats := model.NewDailyStats("2024-01-15")
	stats.HourlyBreakdown["00"].Prompts = 1
	stats.HourlyBreakdown["12"].Prompts = 8

	line := td.hourlySparkline(stats, 80)
	bars := []rune(line[strings.Index(line, "[")+1 : strings.Index(line, "]")])

	assert.Len(t, bars, 24)
	assert.Equal(t, '█', bars[12])
	assert.NotEqual(t, ' ', bars[0])
	assert.Equal(t, ' ', bars[1])
}

func TestHourlySparklineAllQuiet(t *testing.T) {
	td := NewTerminalDisplay("24h")
	line := td.hourlySparkline(model.NewDailyStats("2024-01-15"), 80)

	bars := line[strings.Index(line, "[")+1 : strings.Index(line, "]")]
	assert.Equal(t, strings.Repeat(" ", 24), bars)
}

func TestClockLayout(t *testing.T) {
	assert.Equal(t, "15:04:05", NewTerminalDisplay("24h").clockLayout())
	assert.Equal(t, "3:04:05 PM", NewTerminalDisplay("12h").clockLayout())
}

func TestStopWithoutStart(t *testing.T) {
	td := NewTerminalDisplay("24h")
	assert.NotPanics(t, func() {
		td.Stop()
		td.Stop()
	})
}
