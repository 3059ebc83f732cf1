package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/dthphuong/copilot-status/internal/application/tracker"
	"github.com/dthphuong/copilot-status/internal/data/usagelog"
	"github.com/dthphuong/copilot-status/internal/util"
)

var (
	trackInterval  int
	trackSimulate  bool
	trackSimChance float64
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Track usage in the background",
	Long: `Watches the session directory and appends one usage event per
session to the usage log. All sessions present at startup are processed
once; new session files are picked up as they appear and are never
processed twice. Press Ctrl+C to stop.`,
	RunE: runTrack,
}

func init() {
	rootCmd.AddCommand(trackCmd)

	trackCmd.Flags().IntVar(&trackInterval, "interval", 0,
		"Poll interval in seconds (default from config, 5)")
	trackCmd.Flags().BoolVar(&trackSimulate, "simulate", false,
		"Also emit simulated activity events")
	trackCmd.Flags().Float64Var(&trackSimChance, "simulate-chance", 0.3,
		"Probability of a simulated event per poll (0-1)")
}

func runTrack(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}

	interval := trackInterval
	if interval <= 0 {
		interval = cfg.RefreshInterval
	}
	if trackSimChance < 0 || trackSimChance > 1 {
		return fmt.Errorf("simulate-chance must be between 0 and 1")
	}

	var probe tracker.ActivityProbe
	if trackSimulate {
		probe = tracker.NewSimulationProbe(trackSimChance)
	}

	store := usagelog.NewStore(cfg.UsageLogPath)
	t := tracker.New(cfg.SessionsDir, store, probe,
		time.Duration(interval)*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	go func() {
		<-sigChan
		cancel()
	}()

	util.LogInfof("Tracking sessions in %s, logging to %s", cfg.SessionsDir, store.Path())
	fmt.Printf("Tracking %s (Ctrl+C to stop)\n", cfg.SessionsDir)

	acc, err := t.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("\nTracked %d sessions, %d events appended, %s tokens observed.\n",
		acc.SessionsProcessed, acc.EventsAppended, util.FormatNumber(acc.TokensObserved))
	return nil
}
