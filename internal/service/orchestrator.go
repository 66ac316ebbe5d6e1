package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gnomegl/productive-box/internal/config"
	"github.com/gnomegl/productive-box/internal/display"
	"github.com/gnomegl/productive-box/internal/github"
)

var ErrNoRepositories = errors.New("no contributed repositories found")

// Publisher receives the finished report lines.
type Publisher interface {
	Publish(ctx context.Context, lines []string) error
}

type Orchestrator struct {
	querier   github.Querier
	publisher Publisher
	config    *config.AppConfig
	console   *display.Console
}

// NewOrchestrator wires one report run. publisher may be nil for a dry run.
func NewOrchestrator(querier github.Querier, publisher Publisher, cfg *config.AppConfig, console *display.Console) *Orchestrator {
	return &Orchestrator{
		querier:   querier,
		publisher: publisher,
		config:    cfg,
		console:   console,
	}
}

// Run executes identity -> repositories -> commit analysis -> report -> publish.
// Only per-repository commit fetches are allowed to fail.
func (o *Orchestrator) Run(ctx context.Context) error {
	o.console.Info("🚀 Starting productive-box...")
	o.console.Println()

	identity, err := github.FetchIdentity(ctx, o.querier)
	if err != nil {
		return err
	}
	o.console.Success("Fetched user info: %s (%s)", identity.Login, identity.ID)

	repos, err := github.FetchContributedRepos(ctx, o.querier, identity.Login)
	if err != nil {
		return err
	}
	o.console.Success("Found %d contributed repositories", len(repos))
	if len(repos) == 0 {
		return ErrNoRepositories
	}

	counts := github.AnalyzeCommitTimes(ctx, o.querier, o.console, identity.ID, repos, o.config.Location)

	lines, err := display.GenerateReport(counts)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}
	o.console.Success("Analyzed %d total commits", counts.Total())

	if o.config.DryRun || o.publisher == nil {
		o.console.Println()
		for _, line := range lines {
			o.console.Println(line)
		}
		o.console.Println()
		o.console.Info("Dry run, gist not updated (%s)", github.ReportTitle(lines))
		return nil
	}

	if err := o.publisher.Publish(ctx, lines); err != nil {
		return err
	}

	o.console.Println()
	o.console.Success("All done!")
	return nil
}
