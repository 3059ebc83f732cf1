// Package formatter renders daily stats for the console and for export.
package formatter

import (
	"fmt"
	"io"
	"sort"

	"github.com/dthphuong/copilot-status/internal/core/model"
)

// Formatter renders one DailyStats to a writer.
type Formatter interface {
	Format(w io.Writer, stats *model.DailyStats) error
}

// ForOutput selects the formatter for an --output value, defaulting to the
// table renderer.
func ForOutput(format string) Formatter {
	switch format {
	case "json":
		return NewJSONFormatter()
	case "csv":
		return NewCSVFormatter()
	case "summary":
		return NewSummaryFormatter()
	default:
		return NewTableFormatter()
	}
}

// sortedHours returns the 24 hour keys in order.
func sortedHours(stats *model.DailyStats) []string {
	hours := make([]string, 0, len(stats.HourlyBreakdown))
	for hour := range stats.HourlyBreakdown {
		hours = append(hours, hour)
	}
	sort.Strings(hours)
	return hours
}

// sortedCounts returns map entries ordered by descending count, then name.
func sortedCounts(m map[string]int) []countEntry {
	entries := make([]countEntry, 0, len(m))
	for name, count := range m {
		entries = append(entries, countEntry{Name: name, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}

type countEntry struct {
	Name  string
	Count int
}

func formatSeconds(secs int64) string {
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	if secs < 3600 {
		return fmt.Sprintf("%dm %02ds", secs/60, secs%60)
	}
	return fmt.Sprintf("%dh %02dm", secs/3600, (secs%3600)/60)
}
