package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/sevigo/slash-dispatch/internal/core"
	"github.com/sevigo/slash-dispatch/internal/github"
)

// RepositoryDispatcher sends commands as repository_dispatch events.
type RepositoryDispatcher struct {
	client github.Client
	logger *slog.Logger
}

// NewRepositoryDispatcher creates a RepositoryDispatcher.
func NewRepositoryDispatcher(client github.Client, logger *slog.Logger) *RepositoryDispatcher {
	return &RepositoryDispatcher{client: client, logger: logger}
}

// Dispatch sends a repository_dispatch event of type cmd.EventType() with the
// whole payload as client_payload.
func (d *RepositoryDispatcher) Dispatch(ctx context.Context, cmd core.Command, payload *core.ClientPayload) (Result, error) {
	repo, err := core.ParseRepository(cmd.Repository)
	if err != nil {
		return Result{}, err
	}

	eventType := cmd.EventType()
	data, err := json.Marshal(payload)
	if err != nil {
		return Result{}, fmt.Errorf("%w: failed to encode client payload: %w", core.ErrDispatchFailed, err)
	}

	if err := d.client.CreateRepositoryDispatch(ctx, repo.Owner, repo.Name, eventType, data); err != nil {
		return Result{}, fmt.Errorf("%w: repository dispatch %q to %s: %w", core.ErrDispatchFailed, eventType, repo, err)
	}

	d.logger.Info("command dispatched",
		"command", cmd.Command,
		"repository", cmd.Repository,
		"event_type", eventType,
	)
	return Result{Target: eventType}, nil
}
