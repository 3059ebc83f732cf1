package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/dthphuong/copilot-status/internal/application/dashboard"
	"github.com/dthphuong/copilot-status/internal/data/aggregator"
	"github.com/dthphuong/copilot-status/internal/presentation/display"
)

var (
	dashboardInterval   int
	dashboardTimeFormat string
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Monitor today's usage in real-time",
	Long: `Displays a live view of today's usage that refreshes on a fixed
interval: totals, burn rate, context usage, and an hourly activity
sparkline. Press Ctrl+C to exit; the terminal is restored and a final
summary is printed.`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)

	dashboardCmd.Flags().IntVar(&dashboardInterval, "interval", 0,
		"Refresh interval in seconds (default from config, 5)")
	dashboardCmd.Flags().StringVar(&dashboardTimeFormat, "time-format", "24h",
		"Time format (12h or 24h)")
}

func runDashboard(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}

	if dashboardTimeFormat != "12h" && dashboardTimeFormat != "24h" {
		return fmt.Errorf("invalid time format '%s': must be either '12h' or '24h'", dashboardTimeFormat)
	}

	interval := dashboardInterval
	if interval <= 0 {
		interval = cfg.RefreshInterval
	}

	controller := dashboard.NewController(
		aggregator.New(cfg.SessionsDir),
		display.NewTerminalDisplay(dashboardTimeFormat),
		time.Duration(interval)*time.Second,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	go func() {
		<-sigChan
		cancel()
	}()

	return controller.Run(ctx)
}
