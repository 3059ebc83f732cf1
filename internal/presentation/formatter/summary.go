package formatter

import (
	"fmt"
	"io"
	"time"

	"github.com/dthphuong/copilot-status/internal/core/model"
	"github.com/dthphuong/copilot-status/internal/util"
)

// SummaryFormatter renders a compact colored overview for quick checks.
type SummaryFormatter struct{}

func NewSummaryFormatter() *SummaryFormatter {
	return &SummaryFormatter{}
}

func (f *SummaryFormatter) Format(w io.Writer, stats *model.DailyStats) error {
	fmt.Fprintln(w, util.FormatHeaderTitle("Copilot usage "+stats.Date))
	fmt.Fprintln(w, util.FormatSectionSeparator(48))

	fmt.Fprintf(w, "  %s %d\n", util.PadRight("Sessions", 20), stats.UniqueSessions)
	fmt.Fprintf(w, "  %s %d\n", util.PadRight("Prompts", 20), stats.TotalPrompts)
	fmt.Fprintf(w, "  %s %s\n", util.PadRight("Tokens", 20), util.FormatNumber(stats.TotalTokens))
	fmt.Fprintf(w, "  %s %s\n", util.PadRight("Cost", 20), util.FormatCurrency(stats.TotalCost))
	fmt.Fprintf(w, "  %s %s\n", util.PadRight("Time in sessions", 20),
		util.FormatDuration(time.Duration(stats.TotalDuration)*time.Second))
	fmt.Fprintf(w, "  %s %.1f\n", util.PadRight("Avg prompt tokens", 20), stats.AveragePromptTokens)

	busiest, prompts := busiestHour(stats)
	if prompts > 0 {
		fmt.Fprintf(w, "  %s %s:00 (%d prompts)\n", util.PadRight("Busiest hour", 20), busiest, prompts)
	}

	return nil
}

func busiestHour(stats *model.DailyStats) (string, int) {
	best, bestPrompts := "", 0
	for _, hour := range sortedHours(stats) {
		if b := stats.HourlyBreakdown[hour]; b.Prompts > bestPrompts {
			best, bestPrompts = hour, b.Prompts
		}
	}
	return best, bestPrompts
}
