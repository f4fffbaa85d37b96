package dispatch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sevigo/slash-dispatch/internal/core"
	"github.com/sevigo/slash-dispatch/internal/github"
)

// MaxWorkflowInputs is the number of inputs GitHub accepts on a
// workflow_dispatch. Named arguments past this count are dropped silently.
const MaxWorkflowInputs = 10

// WorkflowDispatcher triggers workflow_dispatch runs.
type WorkflowDispatcher struct {
	client github.Client
	logger *slog.Logger
}

// NewWorkflowDispatcher creates a WorkflowDispatcher.
func NewWorkflowDispatcher(client github.Client, logger *slog.Logger) *WorkflowDispatcher {
	return &WorkflowDispatcher{client: client, logger: logger}
}

// Dispatch triggers cmd.WorkflowFileName() in the command's repository. The
// ref comes from the "ref" named argument when set, otherwise from the
// repository's default branch.
func (d *WorkflowDispatcher) Dispatch(ctx context.Context, cmd core.Command, payload *core.ClientPayload) (Result, error) {
	repo, err := core.ParseRepository(cmd.Repository)
	if err != nil {
		return Result{}, err
	}
	if payload == nil || payload.SlashCommand == nil {
		return Result{}, fmt.Errorf("%w: %w", core.ErrDispatchFailed, core.ErrMissingSlashCommand)
	}

	workflow := cmd.WorkflowFileName()
	named := payload.SlashCommand.Args.Named

	ref, err := d.resolveRef(ctx, repo, named)
	if err != nil {
		return Result{}, err
	}

	if err := d.client.CreateWorkflowDispatch(ctx, repo.Owner, repo.Name, workflow, ref, WorkflowInputs(named)); err != nil {
		return Result{}, fmt.Errorf("%w: workflow %q on %s@%s: %w", core.ErrDispatchFailed, workflow, repo, ref, err)
	}

	d.logger.Info("command dispatched to workflow",
		"command", cmd.Command,
		"workflow", workflow,
		"repository", cmd.Repository,
		"ref", ref,
	)
	return Result{Target: workflow, Ref: ref}, nil
}

func (d *WorkflowDispatcher) resolveRef(ctx context.Context, repo core.RepositoryReference, named core.NamedArgs) (string, error) {
	if ref, ok := named.Get(core.RefArgument); ok && ref != "" {
		return ref, nil
	}

	repository, err := d.client.GetRepository(ctx, repo.Owner, repo.Name)
	if err != nil {
		return "", fmt.Errorf("%w: default branch of %s: %w", core.ErrDispatchFailed, repo, err)
	}
	branch := repository.GetDefaultBranch()
	if branch == "" {
		return "", fmt.Errorf("%w: %s has no default branch", core.ErrDispatchFailed, repo)
	}
	return branch, nil
}

// WorkflowInputs builds the workflow_dispatch inputs: the first
// MaxWorkflowInputs named arguments in order, without the "ref" argument.
func WorkflowInputs(named core.NamedArgs) map[string]interface{} {
	args := named.First(MaxWorkflowInputs, core.RefArgument)
	inputs := make(map[string]interface{}, len(args))
	for _, arg := range args {
		inputs[arg.Name] = arg.Value
	}
	return inputs
}
