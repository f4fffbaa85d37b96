// Package dispatch forwards commands to their target repository, either as a
// repository_dispatch event or as a workflow_dispatch run.
package dispatch

import (
	"context"

	"github.com/sevigo/slash-dispatch/internal/core"
)

// Result describes what a strategy dispatched.
type Result struct {
	// Target is the event type or the workflow file name.
	Target string
	// Ref is the ref a workflow was dispatched on; empty for repository events.
	Ref string
}

// Strategy forwards a command and its payload to the command's repository.
type Strategy interface {
	Dispatch(ctx context.Context, cmd core.Command, payload *core.ClientPayload) (Result, error)
}

// Router picks the strategy for a command from its dispatch type.
type Router struct {
	repository Strategy
	workflow   Strategy
}

// NewRouter creates a Router over the two strategies.
func NewRouter(repository, workflow Strategy) *Router {
	return &Router{repository: repository, workflow: workflow}
}

// Select returns the strategy for cmd and the state the run enters with it.
// Anything other than a repository dispatch goes to the workflow strategy.
func (r *Router) Select(cmd core.Command) (Strategy, core.RunState) {
	if cmd.DispatchType == core.DispatchRepository {
		return r.repository, core.StateRepositoryDispatching
	}
	return r.workflow, core.StateWorkflowDispatching
}

// Dispatch runs exactly one strategy for cmd.
func (r *Router) Dispatch(ctx context.Context, cmd core.Command, payload *core.ClientPayload) (Result, error) {
	strategy, _ := r.Select(cmd)
	return strategy.Dispatch(ctx, cmd, payload)
}
