package dispatch

import (
	"context"
	"fmt"

	"github.com/sevigo/slash-dispatch/internal/core"
	"github.com/sevigo/slash-dispatch/internal/github"
)

// Notifier acknowledges a command by reacting to the comment that triggered it.
type Notifier struct {
	client github.Client
}

// NewNotifier creates a Notifier.
func NewNotifier(client github.Client) *Notifier {
	return &Notifier{client: client}
}

// AddReaction attaches kind to the comment. The returned error wraps
// core.ErrReactionFailed; callers log it and carry on, a missing reaction
// never fails a dispatch.
func (n *Notifier) AddReaction(ctx context.Context, repo core.RepositoryReference, commentID int64, kind core.ReactionKind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: unsupported reaction %q", core.ErrReactionFailed, kind)
	}
	if err := n.client.CreateIssueCommentReaction(ctx, repo.Owner, repo.Name, commentID, string(kind)); err != nil {
		return fmt.Errorf("%w: comment %d on %s: %w", core.ErrReactionFailed, commentID, repo, err)
	}
	return nil
}
