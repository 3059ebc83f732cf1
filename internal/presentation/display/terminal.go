// Package display draws the live dashboard on a raw terminal.
package display

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/dthphuong/copilot-status/internal/core/model"
	"github.com/dthphuong/copilot-status/internal/util"
)

// TerminalDisplay owns cursor state for the dashboard loop. Start hides the
// cursor; Stop must restore it on every exit path.
type TerminalDisplay struct {
	timeFormat string
	started    bool
}

func NewTerminalDisplay(timeFormat string) *TerminalDisplay {
	return &TerminalDisplay{timeFormat: timeFormat}
}

// Start prepares the terminal for repeated in-place redraws.
func (td *TerminalDisplay) Start() {
	if !td.started {
		fmt.Print(util.HideCursor)
		fmt.Print(util.ClearScreen)
		td.started = true
	}
}

// Stop restores the cursor. Safe to call multiple times.
func (td *TerminalDisplay) Stop() {
	if td.started {
		fmt.Print(util.ShowCursor)
		td.started = false
	}
}

// Render draws one dashboard frame from the top of the screen.
func (td *TerminalDisplay) Render(snapshot *model.DashboardSnapshot) {
	width := td.terminalWidth()
	stats := snapshot.Stats

	fmt.Print(util.MoveCursorHome)

	title := fmt.Sprintf("Copilot Status  %s", stats.Date)
	line := func(format string, args ...interface{}) {
		text := fmt.Sprintf(format, args...)
		fmt.Print(util.PadRight(text, width))
		fmt.Print("\n")
	}

	line("%s", util.FormatHeaderTitle(title))
	line("%s", util.FormatSectionSeparator(width))
	line("")
	line("  Sessions today     %d", stats.UniqueSessions)
	line("  Prompts            %d", stats.TotalPrompts)
	line("  Tokens             %s", util.FormatNumber(stats.TotalTokens))
	line("  Cost               %s", util.FormatCurrency(stats.TotalCost))
	line("  Time in sessions   %s", util.FormatDuration(time.Duration(stats.TotalDuration)*time.Second))
	line("")
	line("%s", util.FormatOverviewTitle("Burn rate"))
	line("  Tokens             %s", util.FormatBurnRate(snapshot.Rate.TokensPerMinute))
	line("  Cost               %s/hour", util.FormatCurrency(snapshot.Rate.CostPerHour))
	line("")
	line("%s", util.FormatDataTitle("Context usage"))
	line("  %s %.1f%% %s",
		util.CreateProgressBar(snapshot.ContextUsage, width-12),
		snapshot.ContextUsage,
		util.GetPercentageEmoji(snapshot.ContextUsage))
	line("")
	line("%s", td.hourlySparkline(stats, width))
	line("")
	line("  Refreshed %s (Ctrl+C to quit)",
		util.GetTimeProvider().Format(time.Unix(snapshot.RefreshedAt, 0), td.clockLayout()))

	// Clear anything left over from a taller previous frame.
	fmt.Print("\033[J")
}

// hourlySparkline draws prompts-per-hour as a one-line bar chart.
func (td *TerminalDisplay) hourlySparkline(stats *model.DailyStats, width int) string {
	levels := []rune(" ▁▂▃▄▅▆▇█")
	maxPrompts := 0
	for h := 0; h < 24; h++ {
		if b := stats.HourlyBreakdown[model.HourKey(h)]; b.Prompts > maxPrompts {
			maxPrompts = b.Prompts
		}
	}

	bars := make([]rune, 24)
	for h := 0; h < 24; h++ {
		bucket := stats.HourlyBreakdown[model.HourKey(h)]
		idx := 0
		if maxPrompts > 0 && bucket.Prompts > 0 {
			idx = 1 + bucket.Prompts*(len(levels)-2)/maxPrompts
			if idx >= len(levels) {
				idx = len(levels) - 1
			}
		}
		bars[h] = levels[idx]
	}
	return fmt.Sprintf("  Activity 00-23  [%s]", string(bars))
}

func (td *TerminalDisplay) clockLayout() string {
	if td.timeFormat == "12h" {
		return "3:04:05 PM"
	}
	return "15:04:05"
}

func (td *TerminalDisplay) terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
