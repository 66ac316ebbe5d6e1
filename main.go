package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/gnomegl/productive-box/internal/cli"
	"github.com/gnomegl/productive-box/internal/config"
	"github.com/gnomegl/productive-box/internal/display"
	"github.com/gnomegl/productive-box/internal/github"
	"github.com/gnomegl/productive-box/internal/service"
	"github.com/joho/godotenv"
	urfavecli "github.com/urfave/cli/v2"
)

func runApp(c *urfavecli.Context) error {
	cfg, err := config.ParseConfig(c)
	if err != nil {
		return err
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	console := display.NewConsole()
	client := github.GetGithubClient(cfg.Token)
	querier := github.NewGraphQLClient(client, cfg.Token)

	var publisher service.Publisher
	if !cfg.DryRun {
		publisher = github.NewGistPublisher(client.Gists, cfg.GistID, console)
	}

	orchestrator := service.NewOrchestrator(querier, publisher, cfg, console)
	if cfg.Schedule == "" {
		return orchestrator.Run(c.Context)
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return service.Schedule(ctx, cfg.Schedule, orchestrator.Run, console)
}

func main() {
	// a missing .env is fine, the environment may already be set
	_ = godotenv.Load(".env")

	app := cli.NewApp(runApp)
	if err := app.Run(os.Args); err != nil {
		display.NewConsole().Error("Error: %v", err)
		os.Exit(1)
	}
}
