package cli

import (
	"github.com/gnomegl/productive-box/internal/utils"
	"github.com/urfave/cli/v2"
)

const helpTemplate = `{{.Name}} - {{.Usage}}

Usage: {{.HelpName}} [options]

Options:
   {{range .VisibleFlags}}{{.}}
   {{end}}`

// Flags are shared with config tests so both parse the same surface.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "token",
			Aliases: []string{"t"},
			Usage:   "GitHub personal access token with gist and read:user scopes",
			EnvVars: []string{"GH_TOKEN"},
		},
		&cli.StringFlag{
			Name:    "gist-id",
			Aliases: []string{"g"},
			Usage:   "ID of the gist to overwrite with the report",
			EnvVars: []string{"GIST_ID"},
		},
		&cli.StringFlag{
			Name:    "timezone",
			Aliases: []string{"z"},
			Usage:   "IANA time zone used to bucket commit times",
			EnvVars: []string{"TIMEZONE"},
			Value:   "UTC",
		},
		&cli.BoolFlag{
			Name:    "dry-run",
			Aliases: []string{"n"},
			Usage:   "Print the report instead of updating the gist",
		},
		&cli.StringFlag{
			Name:    "cron",
			Usage:   "Keep running and refresh the gist on this cron schedule",
			EnvVars: []string{"CRON_SCHEDULE"},
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "Disable colored output",
		},
	}
}

func NewApp(action cli.ActionFunc) *cli.App {
	cli.AppHelpTemplate = helpTemplate

	return &cli.App{
		Name:    "productive-box",
		Usage:   "Update a pinned gist with the times of day you commit 🌞🌙",
		Version: "v" + utils.GetVersion(),
		Flags:   Flags(),
		Action:  action,
		Authors: []*cli.Author{
			{Name: "gnomegl"},
		},
	}
}
