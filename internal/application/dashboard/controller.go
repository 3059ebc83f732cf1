package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/dthphuong/copilot-status/internal/core/model"
	"github.com/dthphuong/copilot-status/internal/data/aggregator"
	"github.com/dthphuong/copilot-status/internal/presentation/display"
	"github.com/dthphuong/copilot-status/internal/util"
)

// Controller runs the dashboard loop: on every tick it recomputes today's
// stats from scratch and hands the snapshot to the display. Ticks are
// independent; a failure inside one tick is logged and the next tick runs.
type Controller struct {
	aggregator *aggregator.Aggregator
	display    *display.TerminalDisplay
	interval   time.Duration
	now        func() time.Time

	last *model.DashboardSnapshot
}

// NewController creates a dashboard Controller.
func NewController(agg *aggregator.Aggregator, disp *display.TerminalDisplay, interval time.Duration) *Controller {
	return &Controller{
		aggregator: agg,
		display:    disp,
		interval:   interval,
		now:        time.Now,
	}
}

// Run drives the refresh loop until ctx is cancelled, then restores the
// terminal and prints a closing summary. The cleanup runs on every exit
// path, including a failed first tick.
func (c *Controller) Run(ctx context.Context) error {
	c.display.Start()
	defer func() {
		c.display.Stop()
		c.printSummary()
	}()

	// First frame immediately, then on the interval.
	c.tick()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			c.tick()
		}
	}
}

// tick recomputes and renders one frame.
func (c *Controller) tick() {
	now := c.now()
	date := now.UTC().Format(aggregator.DateLayout)

	stats, err := c.aggregator.AggregateDaily(date)
	if err != nil {
		util.LogErrorf("Dashboard refresh failed: %v", err)
		return
	}

	snapshot := ComputeSnapshot(stats, now)
	c.last = snapshot
	c.display.Render(snapshot)
}

// printSummary writes the final observed figures after the loop exits.
func (c *Controller) printSummary() {
	if c.last == nil {
		fmt.Println("No usage data collected.")
		return
	}

	stats := c.last.Stats
	fmt.Printf("\nSession summary for %s\n", stats.Date)
	fmt.Printf("  Sessions: %d  Prompts: %d  Tokens: %s  Cost: %s\n",
		stats.UniqueSessions,
		stats.TotalPrompts,
		util.FormatNumber(stats.TotalTokens),
		util.FormatCurrency(stats.TotalCost))
}
