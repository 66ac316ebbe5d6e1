package service

import (
	"context"
	"fmt"

	"github.com/gnomegl/productive-box/internal/display"
	"github.com/robfig/cron/v3"
)

// Schedule runs job once immediately and then on every tick of spec until
// ctx is cancelled. A tick is skipped while the previous run is still going.
func Schedule(ctx context.Context, spec string, job func(context.Context) error, console *display.Console) error {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))

	_, err := c.AddFunc(spec, func() {
		if err := job(ctx); err != nil {
			console.Error("Scheduled run failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", spec, err)
	}

	if err := job(ctx); err != nil {
		console.Error("Initial run failed: %v", err)
	}

	c.Start()
	console.Info("Cron scheduler started with schedule: %s", spec)

	<-ctx.Done()
	console.Info("Shutting down...")
	<-c.Stop().Done()
	return nil
}
