// Package core defines the essential interfaces and data structures that form the
// backbone of the application: commands, the payload forwarded with them, and
// the record of a single dispatch run.
package core

import "fmt"

// DispatchType selects how a command is forwarded to its target repository.
type DispatchType string

const (
	// DispatchRepository sends a repository_dispatch event.
	DispatchRepository DispatchType = "repository"
	// DispatchWorkflow triggers a workflow_dispatch run of a named workflow file.
	DispatchWorkflow DispatchType = "workflow"
)

// ParseDispatchType validates a dispatch type read from configuration or a request.
func ParseDispatchType(s string) (DispatchType, error) {
	switch DispatchType(s) {
	case DispatchRepository, DispatchWorkflow:
		return DispatchType(s), nil
	default:
		return "", fmt.Errorf("invalid dispatch type %q, must be %q or %q", s, DispatchRepository, DispatchWorkflow)
	}
}

// Command describes a requested action and where it is forwarded to.
type Command struct {
	Command         string
	Repository      string
	DispatchType    DispatchType
	EventTypeSuffix string

	// Permission is the minimum level an actor needs to run the command.
	Permission PermissionLevel
}

// EventType is the repository_dispatch event type. The suffix is appended
// as-is, so suffixes carry their own separator ("-command", "_ci").
func (c Command) EventType() string {
	return c.Command + c.EventTypeSuffix
}

// WorkflowFileName is the workflow file triggered for workflow dispatches.
func (c Command) WorkflowFileName() string {
	return c.EventType() + ".yml"
}
