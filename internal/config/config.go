package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/gnomegl/productive-box/internal/github"
	"github.com/urfave/cli/v2"
)

type AppConfig struct {
	Token    string
	GistID   string
	Timezone string
	Location *time.Location
	DryRun   bool
	Schedule string
	NoColor  bool
}

// ParseConfig reads flags (with their env fallbacks) and validates them.
// GIST_ID may be omitted for a dry run.
func ParseConfig(c *cli.Context) (*AppConfig, error) {
	cfg := &AppConfig{
		Token:    strings.TrimSpace(c.String("token")),
		GistID:   strings.TrimSpace(c.String("gist-id")),
		Timezone: strings.TrimSpace(c.String("timezone")),
		DryRun:   c.Bool("dry-run"),
		Schedule: strings.TrimSpace(c.String("cron")),
		NoColor:  c.Bool("no-color"),
	}

	var missing []string
	if cfg.Token == "" {
		missing = append(missing, "GH_TOKEN")
	}
	if cfg.GistID == "" && !cfg.DryRun {
		missing = append(missing, "GIST_ID")
	}
	if len(missing) > 0 {
		err := fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
		if cfg.Token == "" {
			return nil, fmt.Errorf("%w: %w", github.ErrAuthenticationMissing, err)
		}
		return nil, err
	}

	if cfg.Timezone == "" {
		cfg.Timezone = "UTC"
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	return cfg, nil
}
