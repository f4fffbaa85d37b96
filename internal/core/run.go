package core

import "time"

// DispatchRequest is a single invocation of a command.
type DispatchRequest struct {
	// ID correlates the request across logs and the run audit log.
	ID      string
	Command Command
	Payload ClientPayload

	// Actor is the login whose permission gates the run.
	Actor string
	// SourceRepository is the "owner/repo" the command was posted in.
	SourceRepository string
	// CommentID is the triggering comment, 0 when there is none to react to.
	CommentID int64
	// PullRequestNumber enriches the payload when it has no pull request yet.
	PullRequestNumber int
}

// RunState is a step of the dispatch state machine.
type RunState string

const (
	StateReceived              RunState = "received"
	StateAuthorizing           RunState = "authorizing"
	StateEnriching             RunState = "enriching"
	StateRouting               RunState = "routing"
	StateRepositoryDispatching RunState = "repository_dispatching"
	StateWorkflowDispatching   RunState = "workflow_dispatching"
	StateAcknowledging         RunState = "acknowledging"
	StateDone                  RunState = "done"
	StateFailed                RunState = "failed"
)

// DispatchRun is the audit record of one invocation.
type DispatchRun struct {
	ID               int64     `db:"id" json:"id"`
	RequestID        string    `db:"request_id" json:"request_id"`
	Command          string    `db:"command" json:"command"`
	TargetRepository string    `db:"target_repository" json:"target_repository"`
	SourceRepository string    `db:"source_repository" json:"source_repository"`
	Actor            string    `db:"actor" json:"actor"`
	DispatchType     string    `db:"dispatch_type" json:"dispatch_type"`
	Target           string    `db:"target" json:"target"`
	Ref              string    `db:"ref" json:"ref,omitempty"`
	State            RunState  `db:"state" json:"state"`
	Error            string    `db:"error" json:"error,omitempty"`
	StartedAt        time.Time `db:"started_at" json:"started_at"`
	FinishedAt       time.Time `db:"finished_at" json:"finished_at"`
}
