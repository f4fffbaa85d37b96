package dispatch

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sevigo/slash-dispatch/internal/core"
	"github.com/sevigo/slash-dispatch/internal/github"
)

// RunRecorder persists the outcome of a dispatch run.
type RunRecorder interface {
	RecordRun(ctx context.Context, run *core.DispatchRun) error
}

// Engine runs dispatch requests end to end. It implements core.Job.
type Engine struct {
	permissions *PermissionQuery
	pulls       *PullRequestFetcher
	router      *Router
	notifier    *Notifier
	authorizer  core.Authorizer
	recorder    RunRecorder
	reaction    core.ReactionKind
	logger      *slog.Logger
}

// NewEngine wires the engine's components around a single GitHub client.
// recorder may be nil.
func NewEngine(client github.Client, authorizer core.Authorizer, recorder RunRecorder, reaction core.ReactionKind, logger *slog.Logger) *Engine {
	if authorizer == nil {
		authorizer = core.MinimumPermission{}
	}
	return &Engine{
		permissions: NewPermissionQuery(client),
		pulls:       NewPullRequestFetcher(client),
		router: NewRouter(
			NewRepositoryDispatcher(client, logger),
			NewWorkflowDispatcher(client, logger),
		),
		notifier:   NewNotifier(client),
		authorizer: authorizer,
		recorder:   recorder,
		reaction:   reaction,
		logger:     logger,
	}
}

// Run authorizes the actor, enriches the payload, dispatches the command and
// acknowledges the triggering comment. Calls to GitHub are issued one after
// another; a failed call ends the run in the failed state and its error is
// returned. A failed acknowledgement only logs a warning.
func (e *Engine) Run(ctx context.Context, req *core.DispatchRequest) error {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	run := &core.DispatchRun{
		RequestID:        req.ID,
		Command:          req.Command.Command,
		TargetRepository: req.Command.Repository,
		SourceRepository: req.SourceRepository,
		Actor:            req.Actor,
		DispatchType:     string(req.Command.DispatchType),
		State:            core.StateReceived,
		StartedAt:        time.Now(),
	}

	err := e.run(ctx, req, run)

	run.FinishedAt = time.Now()
	if err != nil {
		run.State = core.StateFailed
		run.Error = err.Error()
		e.logger.Error("dispatch run failed", "request_id", run.RequestID, "command", run.Command, "repository", run.TargetRepository, "error", err)
	} else {
		run.State = core.StateDone
	}
	e.record(ctx, run)
	return err
}

func (e *Engine) run(ctx context.Context, req *core.DispatchRequest, run *core.DispatchRun) error {
	source, err := core.ParseRepository(req.SourceRepository)
	if err != nil {
		return err
	}
	if _, err := core.ParseRepository(req.Command.Repository); err != nil {
		return err
	}

	e.transition(run, core.StateAuthorizing)
	level, err := e.permissions.Level(ctx, source, req.Actor)
	if err != nil {
		return err
	}
	if err := e.authorizer.Authorize(req.Command, level); err != nil {
		return err
	}

	payload := req.Payload
	if req.PullRequestNumber > 0 && payload.PullRequest == nil {
		e.transition(run, core.StateEnriching)
		pr, err := e.pulls.Fetch(ctx, source, req.PullRequestNumber)
		if err != nil {
			return err
		}
		payload.PullRequest = pr
	}

	e.transition(run, core.StateRouting)
	strategy, state := e.router.Select(req.Command)
	e.transition(run, state)
	result, err := strategy.Dispatch(ctx, req.Command, &payload)
	if err != nil {
		return err
	}
	run.Target = result.Target
	run.Ref = result.Ref

	if req.CommentID != 0 {
		e.transition(run, core.StateAcknowledging)
		if err := e.notifier.AddReaction(ctx, source, req.CommentID, e.reaction); err != nil {
			e.logger.Warn("failed to set reaction on comment", "request_id", run.RequestID, "comment_id", req.CommentID, "error", err)
		}
	}
	return nil
}

func (e *Engine) transition(run *core.DispatchRun, state core.RunState) {
	e.logger.Debug("dispatch run state changed", "request_id", run.RequestID, "command", run.Command, "from", run.State, "to", state)
	run.State = state
}

func (e *Engine) record(ctx context.Context, run *core.DispatchRun) {
	if e.recorder == nil {
		return
	}
	if err := e.recorder.RecordRun(context.WithoutCancel(ctx), run); err != nil {
		e.logger.Warn("failed to record dispatch run", "request_id", run.RequestID, "command", run.Command, "error", err)
	}
}
