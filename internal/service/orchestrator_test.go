package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/gnomegl/productive-box/internal/config"
	"github.com/gnomegl/productive-box/internal/display"
	"github.com/gnomegl/productive-box/internal/github"
)

type routeQuerier struct {
	calls  []github.Request
	viewer string
	repos  string
	commit map[string]string
	resp   *github.Response
}

func (q *routeQuerier) Execute(ctx context.Context, req github.Request, out interface{}) (*github.Response, error) {
	q.calls = append(q.calls, req)
	resp := q.resp
	if resp == nil {
		resp = &github.Response{}
	}

	var data string
	switch {
	case req.Variables == nil:
		data = q.viewer
	case req.Variables["login"] != nil:
		data = q.repos
	default:
		name, _ := req.Variables["name"].(string)
		body, ok := q.commit[name]
		if !ok {
			return resp, errors.New("repository not found")
		}
		data = body
	}

	if data != "" {
		if err := json.Unmarshal([]byte(data), out); err != nil {
			return resp, err
		}
	}
	return resp, nil
}

type recordingPublisher struct {
	lines [][]string
	err   error
}

func (p *recordingPublisher) Publish(ctx context.Context, lines []string) error {
	p.lines = append(p.lines, lines)
	return p.err
}

const (
	viewerJSON = `{"viewer":{"login":"octocat","id":"U_1"}}`
	reposJSON  = `{"user":{"repositoriesContributedTo":{"nodes":[
		{"name":"alpha","isFork":false,"owner":{"login":"octocat"}},
		{"name":"forked","isFork":true,"owner":{"login":"octocat"}},
		{"name":"beta","isFork":false,"owner":{"login":"github"}}]}}}`
)

func history(dates ...string) string {
	var b strings.Builder
	b.WriteString(`{"repository":{"defaultBranchRef":{"target":{"history":{"edges":[`)
	for i, d := range dates {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(`{"node":{"committedDate":"` + d + `"}}`)
	}
	b.WriteString(`]}}}}}`)
	return b.String()
}

func testConfig() *config.AppConfig {
	return &config.AppConfig{Token: "t", GistID: "g", Timezone: "UTC", Location: time.UTC}
}

func TestRunPublishesReport(t *testing.T) {
	q := &routeQuerier{
		viewer: viewerJSON,
		repos:  reposJSON,
		commit: map[string]string{
			"alpha": history("2024-01-01T08:00:00Z", "2024-01-01T09:00:00Z", "2024-01-01T10:00:00Z"),
			"beta":  history("2024-01-01T21:00:00Z"),
		},
	}
	pub := &recordingPublisher{}
	o := NewOrchestrator(q, pub, testConfig(), display.NewConsoleWriters(io.Discard, io.Discard))

	if err := o.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if len(q.calls) != 4 {
		t.Errorf("made %d queries, want 4 (viewer, repos, 2 histories)", len(q.calls))
	}
	if len(pub.lines) != 1 {
		t.Fatalf("publisher called %d times, want 1", len(pub.lines))
	}
	lines := pub.lines[0]
	wantSuffix := []string{"75.0%", " 0.0%", "25.0%", " 0.0%"}
	for i, suffix := range wantSuffix {
		if !strings.HasSuffix(lines[i], suffix) {
			t.Errorf("line %d = %q, want suffix %q", i, lines[i], suffix)
		}
	}
	if github.ReportTitle(lines) != github.EarlyBirdTitle {
		t.Errorf("title = %q, want early bird", github.ReportTitle(lines))
	}
}

func TestRunAbortsOnBadCredentials(t *testing.T) {
	q := &routeQuerier{resp: &github.Response{Message: github.BadCredentials}}
	pub := &recordingPublisher{}
	o := NewOrchestrator(q, pub, testConfig(), display.NewConsoleWriters(io.Discard, io.Discard))

	err := o.Run(context.Background())
	if !errors.Is(err, github.ErrIdentityResolution) {
		t.Fatalf("Run() error = %v, want ErrIdentityResolution", err)
	}
	if len(q.calls) != 1 {
		t.Errorf("made %d queries, want only the viewer query", len(q.calls))
	}
	if len(pub.lines) != 0 {
		t.Error("publisher called after identity failure")
	}
}

func TestRunStageFailures(t *testing.T) {
	tests := []struct {
		name    string
		q       *routeQuerier
		pubErr  error
		wantErr error
	}{
		{
			name:    "no contributed repositories",
			q:       &routeQuerier{viewer: viewerJSON, repos: `{"user":{"repositoriesContributedTo":{"nodes":[]}}}`},
			wantErr: ErrNoRepositories,
		},
		{
			name:    "every history fetch fails",
			q:       &routeQuerier{viewer: viewerJSON, repos: reposJSON, commit: map[string]string{}},
			wantErr: display.ErrNoCommitsFound,
		},
		{
			name: "publish fails",
			q: &routeQuerier{viewer: viewerJSON, repos: reposJSON, commit: map[string]string{
				"alpha": history("2024-01-01T08:00:00Z"),
				"beta":  history("2024-01-01T08:00:00Z"),
			}},
			pubErr:  &github.PublishError{GistID: "g", Err: errors.New("boom")},
			wantErr: github.ErrPublish,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pub := &recordingPublisher{err: tt.pubErr}
			o := NewOrchestrator(tt.q, pub, testConfig(), display.NewConsoleWriters(io.Discard, io.Discard))

			err := o.Run(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Run() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRunDryRunPrintsReport(t *testing.T) {
	q := &routeQuerier{
		viewer: viewerJSON,
		repos:  reposJSON,
		commit: map[string]string{
			"alpha": history("2024-01-01T01:00:00Z"),
			"beta":  history("2024-01-01T23:00:00Z"),
		},
	}
	cfg := testConfig()
	cfg.DryRun = true

	var stdout bytes.Buffer
	pub := &recordingPublisher{}
	o := NewOrchestrator(q, pub, cfg, display.NewConsoleWriters(&stdout, io.Discard))

	if err := o.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(pub.lines) != 0 {
		t.Error("publisher called during dry run")
	}
	for _, label := range []string{"Morning", "Daytime", "Evening", "Night"} {
		if !strings.Contains(stdout.String(), label) {
			t.Errorf("dry run output missing %s line", label)
		}
	}
}
