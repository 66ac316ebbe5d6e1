package github

import (
	"context"
	"errors"
	"fmt"

	"github.com/gnomegl/productive-box/internal/models"
)

var ErrRepositoryList = errors.New("failed to get contributed repos")

type repositoryNode struct {
	Name   string `json:"name"`
	IsFork bool   `json:"isFork"`
	Owner  *struct {
		Login string `json:"login"`
	} `json:"owner"`
}

type contributedReposData struct {
	User *struct {
		RepositoriesContributedTo *struct {
			Nodes []*repositoryNode `json:"nodes"`
		} `json:"repositoriesContributedTo"`
	} `json:"user"`
}

func (d *contributedReposData) nodes() []*repositoryNode {
	if d.User == nil || d.User.RepositoriesContributedTo == nil {
		return nil
	}
	return d.User.RepositoriesContributedTo.Nodes
}

// FetchContributedRepos lists the non-fork repositories login contributed to.
// A response without a node list yields an empty slice.
func FetchContributedRepos(ctx context.Context, q Querier, login string) ([]models.Repository, error) {
	var data contributedReposData
	resp, err := q.Execute(ctx, ContributedReposQuery(login), &data)
	if IsCredentialRejection(resp, err) {
		return nil, fmt.Errorf("%w: invalid GitHub token, please check your GH_TOKEN", ErrRepositoryList)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRepositoryList, err)
	}

	repos := make([]models.Repository, 0)
	for _, node := range data.nodes() {
		if node == nil || node.IsFork {
			continue
		}
		repo := models.Repository{Name: node.Name}
		if node.Owner != nil {
			repo.Owner = node.Owner.Login
		}
		repos = append(repos, repo)
	}
	return repos, nil
}
