package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dthphuong/copilot-status/internal/core/model"
	"github.com/dthphuong/copilot-status/internal/data/aggregator"
	"github.com/dthphuong/copilot-status/internal/data/usagelog"
	"github.com/dthphuong/copilot-status/internal/presentation/formatter"
	"github.com/dthphuong/copilot-status/internal/util"
)

var (
	statsDate   string
	statsOutput string
	statsSource string
	statsExport string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show usage statistics for a date",
	Long: `Aggregates session transcripts (or logged usage events) for one
calendar date and renders the daily summary.

The sessions source recomputes everything from the transcript files on
each run. The events source reads the append-only usage log written by
the track command; its prompt count is the number of logged events.`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVar(&statsDate, "date", "",
		"Date to report on, YYYY-MM-DD (default today)")
	statsCmd.Flags().StringVarP(&statsOutput, "output", "o", "table",
		"Output format (table, json, csv, summary)")
	statsCmd.Flags().StringVar(&statsSource, "source", "sessions",
		"Data source (sessions, events)")
	statsCmd.Flags().StringVar(&statsExport, "export", "",
		"Write stats to a file with a metadata envelope")
}

func runStats(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}

	date := statsDate
	if date == "" {
		date = time.Now().UTC().Format(aggregator.DateLayout)
	}

	var (
		stats *model.DailyStats
		err   error
	)
	switch statsSource {
	case "sessions":
		stats, err = aggregator.New(cfg.SessionsDir).AggregateDaily(date)
	case "events":
		store := usagelog.NewStore(cfg.UsageLogPath)
		if err := store.EnsureStore(); err != nil {
			return err
		}
		stats, err = store.AggregateDaily(date)
	default:
		return fmt.Errorf("invalid source '%s': must be 'sessions' or 'events'", statsSource)
	}
	if err != nil {
		return err
	}

	if statsExport != "" {
		path := expandPath(statsExport)
		if err := formatter.ExportToFile(path, stats); err != nil {
			return err
		}
		util.LogInfof("Stats exported to %s", path)
	}

	return formatter.ForOutput(statsOutput).Format(os.Stdout, stats)
}
