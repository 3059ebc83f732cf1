package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/dthphuong/copilot-status/internal/core/model"
	"github.com/dthphuong/copilot-status/internal/util"
)

// TableFormatter renders a bordered table: one summary block, then the
// hourly breakdown with active hours only.
type TableFormatter struct {
	headers []string
}

func NewTableFormatter() *TableFormatter {
	return &TableFormatter{
		headers: []string{"Hour", "Prompts", "Tokens", "Cost (USD)", "Duration"},
	}
}

func (f *TableFormatter) Format(w io.Writer, stats *model.DailyStats) error {
	fmt.Fprintf(w, "Usage for %s\n", stats.Date)
	fmt.Fprintf(w, "  Sessions: %d   Prompts: %d   Tokens: %s   Cost: %s   Duration: %s\n",
		stats.UniqueSessions,
		stats.TotalPrompts,
		util.FormatCommaNumber(stats.TotalTokens),
		util.FormatCurrency(stats.TotalCost),
		formatSeconds(stats.TotalDuration))
	fmt.Fprintf(w, "  Avg prompt tokens: %.1f   Avg completion tokens: %.1f\n\n",
		stats.AveragePromptTokens, stats.AverageCompletionTokens)

	rows := f.buildRows(stats)
	if len(rows) == 0 {
		fmt.Fprintln(w, "No activity recorded.")
		return nil
	}

	widths := f.calculateColumnWidths(rows)
	f.printBorder(w, widths, "top")
	f.printRow(w, f.headers, widths)
	f.printBorder(w, widths, "middle")
	for _, row := range rows {
		f.printRow(w, row, widths)
	}
	f.printBorder(w, widths, "bottom")

	if len(stats.Models) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Models:")
		for _, entry := range sortedCounts(stats.Models) {
			fmt.Fprintf(w, "  %-24s %d\n", entry.Name, entry.Count)
		}
	}
	if len(stats.Commands) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Commands:")
		for _, entry := range sortedCounts(stats.Commands) {
			fmt.Fprintf(w, "  %-24s %d\n", entry.Name, entry.Count)
		}
	}

	return nil
}

// buildRows emits one row per hour with any activity.
func (f *TableFormatter) buildRows(stats *model.DailyStats) [][]string {
	var rows [][]string
	for _, hour := range sortedHours(stats) {
		bucket := stats.HourlyBreakdown[hour]
		if bucket.Prompts == 0 && bucket.Tokens == 0 && bucket.Duration == 0 {
			continue
		}
		rows = append(rows, []string{
			hour + ":00",
			fmt.Sprintf("%d", bucket.Prompts),
			util.FormatCommaNumber(bucket.Tokens),
			util.FormatCurrency(bucket.Cost),
			formatSeconds(bucket.Duration),
		})
	}
	return rows
}

func (f *TableFormatter) calculateColumnWidths(rows [][]string) []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = len(header)
	}
	for _, row := range rows {
		for i, value := range row {
			if len(value) > widths[i] {
				widths[i] = len(value)
			}
		}
	}
	return widths
}

func (f *TableFormatter) printBorder(w io.Writer, widths []int, borderType string) {
	var left, middle, right string
	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	case "bottom":
		left, middle, right = "└", "┴", "┘"
	}

	fmt.Fprint(w, left)
	for i, width := range widths {
		fmt.Fprint(w, strings.Repeat("─", width+2))
		if i < len(widths)-1 {
			fmt.Fprint(w, middle)
		}
	}
	fmt.Fprintln(w, right)
}

func (f *TableFormatter) printRow(w io.Writer, values []string, widths []int) {
	fmt.Fprint(w, "│")
	for i, value := range values {
		if i == 0 {
			fmt.Fprintf(w, " %-*s │", widths[i], value)
		} else {
			fmt.Fprintf(w, " %*s │", widths[i], value)
		}
	}
	fmt.Fprintln(w)
}
