package formatter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/dthphuong/copilot-status/internal/core/model"
)

// CSVFormatter writes the hourly breakdown as CSV, all 24 buckets included
// so downstream spreadsheets get a stable row count.
type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

func (f *CSVFormatter) Format(w io.Writer, stats *model.DailyStats) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"date", "hour", "prompts", "tokens", "cost", "duration_seconds"}); err != nil {
		return err
	}

	for _, hour := range sortedHours(stats) {
		bucket := stats.HourlyBreakdown[hour]
		record := []string{
			stats.Date,
			hour,
			fmt.Sprintf("%d", bucket.Prompts),
			fmt.Sprintf("%d", bucket.Tokens),
			fmt.Sprintf("%.6f", bucket.Cost),
			fmt.Sprintf("%d", bucket.Duration),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
