package core

import "fmt"

// PermissionLevel is a collaborator permission level as reported by GitHub.
type PermissionLevel string

const (
	PermissionNone     PermissionLevel = "none"
	PermissionRead     PermissionLevel = "read"
	PermissionTriage   PermissionLevel = "triage"
	PermissionWrite    PermissionLevel = "write"
	PermissionMaintain PermissionLevel = "maintain"
	PermissionAdmin    PermissionLevel = "admin"
)

var permissionRank = map[PermissionLevel]int{
	PermissionNone:     1,
	PermissionRead:     2,
	PermissionTriage:   3,
	PermissionWrite:    4,
	PermissionMaintain: 5,
	PermissionAdmin:    6,
}

// ParsePermissionLevel validates a permission level string.
func ParsePermissionLevel(s string) (PermissionLevel, error) {
	level := PermissionLevel(s)
	if _, ok := permissionRank[level]; !ok {
		return "", fmt.Errorf("invalid permission level %q", s)
	}
	return level, nil
}

// Satisfies reports whether p is at least as strong as required.
// Unknown levels never satisfy anything.
func (p PermissionLevel) Satisfies(required PermissionLevel) bool {
	have, ok := permissionRank[p]
	if !ok {
		return false
	}
	need, ok := permissionRank[required]
	if !ok {
		return false
	}
	return have >= need
}

// Authorizer decides whether an actor with the given permission level may run a command.
type Authorizer interface {
	Authorize(cmd Command, actorLevel PermissionLevel) error
}

// MinimumPermission authorizes actors whose level satisfies Command.Permission.
// Commands without a configured permission require write access.
type MinimumPermission struct{}

// Authorize implements Authorizer.
func (MinimumPermission) Authorize(cmd Command, actorLevel PermissionLevel) error {
	required := cmd.Permission
	if required == "" {
		required = PermissionWrite
	}
	if !actorLevel.Satisfies(required) {
		return fmt.Errorf("%w: command %q requires %q, actor has %q", ErrPermissionDenied, cmd.Command, required, actorLevel)
	}
	return nil
}
