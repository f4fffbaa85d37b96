// Package github provides functionality for interacting with the GitHub API.
package github

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/go-github/v73/github"
	"golang.org/x/oauth2"
)

// Client defines the GitHub operations the dispatch engine consumes.
// Errors are returned unmodified; callers decide whether they are fatal.
//
//go:generate mockgen -destination=../mocks/mock_github_client.go -package=mocks . Client
type Client interface {
	GetCollaboratorPermission(ctx context.Context, owner, repo, actor string) (string, error)
	CreateIssueCommentReaction(ctx context.Context, owner, repo string, commentID int64, content string) error
	GetPullRequest(ctx context.Context, owner, repo string, number int) (*github.PullRequest, error)
	CreateRepositoryDispatch(ctx context.Context, owner, repo, eventType string, payload json.RawMessage) error
	CreateWorkflowDispatch(ctx context.Context, owner, repo, workflowFile, ref string, inputs map[string]interface{}) error
	GetRepository(ctx context.Context, owner, repo string) (*github.Repository, error)
}

type gitHubClient struct {
	client *github.Client
	logger *slog.Logger
}

// NewGitHubClient wraps the official go-github client to provide a focused,
// testable interface for the dispatch operations.
func NewGitHubClient(client *github.Client, logger *slog.Logger) Client {
	return &gitHubClient{client: client, logger: logger}
}

// NewPATClient creates a client authenticated with a Personal Access Token.
// An empty token yields an unauthenticated client, which is enough for
// public read calls. timeout bounds every request; zero means no limit.
func NewPATClient(ctx context.Context, token string, timeout time.Duration, logger *slog.Logger) Client {
	if token == "" {
		return NewGitHubClient(github.NewClient(&http.Client{Timeout: timeout}), logger)
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = timeout
	return NewGitHubClient(github.NewClient(tc), logger)
}

// inFlight refuses calls on a cancelled context. A call that passes the check
// is detached from cancellation and runs to completion or to the client's
// transport timeout.
func inFlight(ctx context.Context) (context.Context, error) {
	if err := ctx.Err(); err != nil {
		return ctx, err
	}
	return context.WithoutCancel(ctx), nil
}

// GetCollaboratorPermission returns the permission level of actor on the repository.
func (g *gitHubClient) GetCollaboratorPermission(ctx context.Context, owner, repo, actor string) (string, error) {
	ctx, err := inFlight(ctx)
	if err != nil {
		return "", err
	}
	level, _, err := g.client.Repositories.GetPermissionLevel(ctx, owner, repo, actor)
	if err != nil {
		g.logger.Error("failed to get collaborator permission", "owner", owner, "repo", repo, "actor", actor, "error", err)
		return "", err
	}
	return level.GetPermission(), nil
}

// CreateIssueCommentReaction adds a reaction to an issue or pull request comment.
func (g *gitHubClient) CreateIssueCommentReaction(ctx context.Context, owner, repo string, commentID int64, content string) error {
	ctx, err := inFlight(ctx)
	if err != nil {
		return err
	}
	_, _, err = g.client.Reactions.CreateIssueCommentReaction(ctx, owner, repo, commentID, content)
	return err
}

// GetPullRequest retrieves a single pull request by its number.
func (g *gitHubClient) GetPullRequest(ctx context.Context, owner, repo string, number int) (*github.PullRequest, error) {
	ctx, err := inFlight(ctx)
	if err != nil {
		return nil, err
	}
	pr, _, err := g.client.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		g.logger.Error("failed to get pull request", "owner", owner, "repo", repo, "pr", number, "error", err)
		return nil, err
	}
	return pr, nil
}

// CreateRepositoryDispatch sends a repository_dispatch event with payload as client_payload.
func (g *gitHubClient) CreateRepositoryDispatch(ctx context.Context, owner, repo, eventType string, payload json.RawMessage) error {
	ctx, err := inFlight(ctx)
	if err != nil {
		return err
	}
	opts := github.DispatchRequestOptions{
		EventType:     eventType,
		ClientPayload: &payload,
	}
	_, _, err = g.client.Repositories.Dispatch(ctx, owner, repo, opts)
	if err != nil {
		g.logger.Error("failed to create repository dispatch", "owner", owner, "repo", repo, "event_type", eventType, "error", err)
	}
	return err
}

// CreateWorkflowDispatch triggers a workflow_dispatch run of workflowFile on ref.
func (g *gitHubClient) CreateWorkflowDispatch(ctx context.Context, owner, repo, workflowFile, ref string, inputs map[string]interface{}) error {
	ctx, err := inFlight(ctx)
	if err != nil {
		return err
	}
	event := github.CreateWorkflowDispatchEventRequest{
		Ref:    ref,
		Inputs: inputs,
	}
	_, err = g.client.Actions.CreateWorkflowDispatchEventByFileName(ctx, owner, repo, workflowFile, event)
	if err != nil {
		g.logger.Error("failed to create workflow dispatch", "owner", owner, "repo", repo, "workflow", workflowFile, "ref", ref, "error", err)
	}
	return err
}

// GetRepository retrieves repository metadata, including its default branch.
func (g *gitHubClient) GetRepository(ctx context.Context, owner, repo string) (*github.Repository, error) {
	ctx, err := inFlight(ctx)
	if err != nil {
		return nil, err
	}
	repository, _, err := g.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		g.logger.Error("failed to get repository", "owner", owner, "repo", repo, "error", err)
		return nil, err
	}
	return repository, nil
}
