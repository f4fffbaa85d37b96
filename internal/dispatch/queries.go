package dispatch

import (
	"context"
	"fmt"

	gogithub "github.com/google/go-github/v73/github"

	"github.com/sevigo/slash-dispatch/internal/core"
	"github.com/sevigo/slash-dispatch/internal/github"
)

// PermissionQuery asks GitHub for an actor's permission level on a repository.
type PermissionQuery struct {
	client github.Client
}

// NewPermissionQuery creates a PermissionQuery.
func NewPermissionQuery(client github.Client) *PermissionQuery {
	return &PermissionQuery{client: client}
}

// Level returns the collaborator permission of actor on repo. Failures are
// wrapped in core.ErrAuthorizationQueryFailed.
func (q *PermissionQuery) Level(ctx context.Context, repo core.RepositoryReference, actor string) (core.PermissionLevel, error) {
	permission, err := q.client.GetCollaboratorPermission(ctx, repo.Owner, repo.Name, actor)
	if err != nil {
		return "", fmt.Errorf("%w: %s on %s: %w", core.ErrAuthorizationQueryFailed, actor, repo, err)
	}
	return core.PermissionLevel(permission), nil
}

// PullRequestFetcher retrieves the pull request a command was posted on.
type PullRequestFetcher struct {
	client github.Client
}

// NewPullRequestFetcher creates a PullRequestFetcher.
func NewPullRequestFetcher(client github.Client) *PullRequestFetcher {
	return &PullRequestFetcher{client: client}
}

// Fetch returns the pull request metadata. Failures, including a missing
// pull request, are wrapped in core.ErrEnrichmentFailed.
func (f *PullRequestFetcher) Fetch(ctx context.Context, repo core.RepositoryReference, number int) (*gogithub.PullRequest, error) {
	pr, err := f.client.GetPullRequest(ctx, repo.Owner, repo.Name, number)
	if err != nil {
		return nil, fmt.Errorf("%w: %s#%d: %w", core.ErrEnrichmentFailed, repo, number, err)
	}
	return pr, nil
}
