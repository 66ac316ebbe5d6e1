package github

import (
	"context"
	"time"

	"github.com/gnomegl/productive-box/internal/display"
	"github.com/gnomegl/productive-box/internal/models"
	"github.com/gnomegl/productive-box/internal/utils"
)

type commitEdge struct {
	Node *struct {
		CommittedDate string `json:"committedDate"`
	} `json:"node"`
}

type commitHistoryData struct {
	Repository *struct {
		DefaultBranchRef *struct {
			Target *struct {
				History *struct {
					Edges []*commitEdge `json:"edges"`
				} `json:"history"`
			} `json:"target"`
		} `json:"defaultBranchRef"`
	} `json:"repository"`
}

// edges returns nil when any level of the history is absent.
func (d *commitHistoryData) edges() []*commitEdge {
	if d == nil || d.Repository == nil || d.Repository.DefaultBranchRef == nil {
		return nil
	}
	target := d.Repository.DefaultBranchRef.Target
	if target == nil || target.History == nil {
		return nil
	}
	return target.History.Edges
}

// historyResult is the outcome of one repository fetch.
type historyResult struct {
	repo    models.Repository
	history *commitHistoryData
	err     error
}

// AnalyzeCommitTimes fetches each repository's history one after another and
// buckets the commit times by local hour in loc (UTC when nil). A failed
// repository is reported as a warning and skipped; the call itself never fails.
func AnalyzeCommitTimes(ctx context.Context, q Querier, console *display.Console, id string, repos []models.Repository, loc *time.Location) models.CommitCounts {
	if loc == nil {
		loc = time.UTC
	}
	console.Success("Using timezone: %s", loc)

	results := fetchHistories(ctx, q, console, id, repos)

	succeeded := 0
	for _, r := range results {
		if r.err == nil {
			succeeded++
		}
	}
	console.Success("Fetched commit history: %d succeeded, %d failed", succeeded, len(results)-succeeded)

	return countCommitTimes(results, loc)
}

func fetchHistories(ctx context.Context, q Querier, console *display.Console, id string, repos []models.Repository) []historyResult {
	results := make([]historyResult, 0, len(repos))
	bar := console.Progress(len(repos), "Fetching commit history")

	for _, repo := range repos {
		var data commitHistoryData
		_, err := q.Execute(ctx, CommitHistoryQuery(id, repo.Name, repo.Owner), &data)
		if err != nil {
			console.Warn("Failed to fetch commits for %s: %v", repo, err)
			results = append(results, historyResult{repo: repo, err: err})
		} else {
			results = append(results, historyResult{repo: repo, history: &data})
		}
		bar.Add(1)
	}

	bar.Finish()
	return results
}

func countCommitTimes(results []historyResult, loc *time.Location) models.CommitCounts {
	var counts models.CommitCounts
	for _, r := range results {
		if r.err != nil {
			continue
		}
		for _, edge := range r.history.edges() {
			if edge == nil || edge.Node == nil || edge.Node.CommittedDate == "" {
				continue
			}
			committed, err := utils.ParseCommitTime(edge.Node.CommittedDate)
			if err != nil {
				continue
			}
			counts.Add(utils.SegmentOf(committed, loc))
		}
	}
	return counts
}
