package github

import (
	"context"
	"errors"
	"fmt"

	"github.com/gnomegl/productive-box/internal/models"
)

var ErrIdentityResolution = errors.New("failed to get username and id")

type viewerData struct {
	Viewer *struct {
		Login string `json:"login"`
		ID    string `json:"id"`
	} `json:"viewer"`
}

// FetchIdentity resolves the login and node id behind the configured token.
func FetchIdentity(ctx context.Context, q Querier) (models.Identity, error) {
	var data viewerData
	resp, err := q.Execute(ctx, ViewerQuery(), &data)
	if IsCredentialRejection(resp, err) {
		return models.Identity{}, fmt.Errorf("%w: invalid GitHub token, please check your GH_TOKEN", ErrIdentityResolution)
	}
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrIdentityResolution, err)
	}

	if data.Viewer == nil || data.Viewer.Login == "" || data.Viewer.ID == "" {
		return models.Identity{}, fmt.Errorf("%w: unable to fetch user information", ErrIdentityResolution)
	}

	return models.Identity{Login: data.Viewer.Login, ID: data.Viewer.ID}, nil
}
