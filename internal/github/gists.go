package github

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/gnomegl/productive-box/internal/display"
	"github.com/google/go-github/v57/github"
)

const (
	EarlyBirdTitle = "I'm an early 🐤"
	NightOwlTitle  = "I'm a night 🦉"
)

var (
	ErrPublishTargetEmpty = errors.New("no files found in the gist")
	ErrPublish            = errors.New("failed to update gist")
)

// PublishError wraps a gist API failure.
type PublishError struct {
	GistID string
	Err    error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("failed to update gist %s: %v", e.GistID, e.Err)
}

func (e *PublishError) Unwrap() error {
	return e.Err
}

func (e *PublishError) Is(target error) bool {
	return target == ErrPublish
}

// GistService is the subset of go-github's GistsService used for publishing.
type GistService interface {
	Get(ctx context.Context, id string) (*github.Gist, *github.Response, error)
	Edit(ctx context.Context, id string, gist *github.Gist) (*github.Gist, *github.Response, error)
}

// GistPublisher overwrites the first file of a gist with the report.
type GistPublisher struct {
	gists   GistService
	gistID  string
	console *display.Console
}

func NewGistPublisher(gists GistService, gistID string, console *display.Console) *GistPublisher {
	return &GistPublisher{
		gists:   gists,
		gistID:  gistID,
		console: console,
	}
}

// Publish replaces the content and name of the gist's first file. The
// file is renamed to a title picked by ReportTitle.
func (p *GistPublisher) Publish(ctx context.Context, lines []string) error {
	gist, _, err := p.gists.Get(ctx, p.gistID)
	if err != nil {
		return &PublishError{GistID: p.gistID, Err: err}
	}

	if gist == nil || len(gist.Files) == 0 {
		return fmt.Errorf("%w: %w", ErrPublish, ErrPublishTargetEmpty)
	}

	filename := firstFilename(gist.Files)
	update := &github.Gist{
		Files: map[github.GistFilename]github.GistFile{
			filename: {
				Filename: github.String(ReportTitle(lines)),
				Content:  github.String(strings.Join(lines, "\n")),
			},
		},
	}

	if _, _, err := p.gists.Edit(ctx, p.gistID, update); err != nil {
		return &PublishError{GistID: p.gistID, Err: err}
	}

	p.console.Success("Successfully updated gist 🎉")
	return nil
}

// firstFilename picks the lexicographically smallest name so repeated runs
// always target the same file.
func firstFilename(files map[github.GistFilename]github.GistFile) github.GistFilename {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, string(name))
	}
	sort.Strings(names)
	return github.GistFilename(names[0])
}

// ReportTitle compares the morning and evening percentages printed at the
// end of report lines 0 and 2.
func ReportTitle(lines []string) string {
	if len(lines) < 3 {
		return NightOwlTitle
	}
	if linePercent(lines[0]) > linePercent(lines[2]) {
		return EarlyBirdTitle
	}
	return NightOwlTitle
}

// linePercent reads the trailing "NN.N%" token of a report line, 0 if absent.
func linePercent(line string) float64 {
	fields := strings.Split(line, " ")
	last := strings.TrimSuffix(fields[len(fields)-1], "%")
	v, err := strconv.ParseFloat(last, 64)
	if err != nil {
		return 0
	}
	return v
}
