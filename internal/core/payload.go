package core

import (
	"bytes"
	"encoding/json"

	"github.com/google/go-github/v73/github"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// RefArgument is the reserved named argument that overrides the target ref
// of a workflow dispatch.
const RefArgument = "ref"

// Arg is a single named argument.
type Arg struct {
	Name  string
	Value string
}

// NamedArgs holds named command arguments in the order the parser produced them.
// The zero value is an empty, usable set.
type NamedArgs struct {
	m *orderedmap.OrderedMap[string, string]
}

// NewNamedArgs builds a NamedArgs from pairs, keeping their order. A repeated
// name keeps its first position and takes the last value.
func NewNamedArgs(args ...Arg) NamedArgs {
	var a NamedArgs
	for _, arg := range args {
		a.Set(arg.Name, arg.Value)
	}
	return a
}

// Set adds or replaces an argument.
func (a *NamedArgs) Set(name, value string) {
	if a.m == nil {
		a.m = orderedmap.New[string, string]()
	}
	a.m.Set(name, value)
}

// Get returns the value of an argument.
func (a NamedArgs) Get(name string) (string, bool) {
	if a.m == nil {
		return "", false
	}
	return a.m.Get(name)
}

// Len returns the number of arguments.
func (a NamedArgs) Len() int {
	if a.m == nil {
		return 0
	}
	return a.m.Len()
}

// Pairs returns all arguments in insertion order.
func (a NamedArgs) Pairs() []Arg {
	return a.First(a.Len())
}

// First returns at most n arguments in insertion order, skipping the excluded
// names. Arguments past the n-th are dropped without notice.
func (a NamedArgs) First(n int, exclude ...string) []Arg {
	if a.m == nil || n <= 0 {
		return nil
	}
	out := make([]Arg, 0, min(n, a.m.Len()))
	for pair := a.m.Oldest(); pair != nil && len(out) < n; pair = pair.Next() {
		if contains(exclude, pair.Key) {
			continue
		}
		out = append(out, Arg{Name: pair.Key, Value: pair.Value})
	}
	return out
}

// MarshalJSON encodes the arguments as a JSON object in insertion order.
func (a NamedArgs) MarshalJSON() ([]byte, error) {
	if a.m == nil {
		return []byte("{}"), nil
	}
	return a.m.MarshalJSON()
}

// UnmarshalJSON decodes a JSON object, keeping the key order of the document.
func (a *NamedArgs) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		a.m = nil
		return nil
	}
	m := orderedmap.New[string, string]()
	if err := m.UnmarshalJSON(data); err != nil {
		return err
	}
	a.m = m
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Args are the parsed arguments of a slash command.
type Args struct {
	All     string    `json:"all"`
	Unnamed []string  `json:"unnamed"`
	Named   NamedArgs `json:"named"`
}

// SlashCommandPayload is the parsed slash command that triggered a dispatch.
type SlashCommandPayload struct {
	Command string `json:"command"`
	Args    Args   `json:"args"`
}

// GitHubContext describes the run that received the command.
type GitHubContext struct {
	EventName  string          `json:"event_name,omitempty"`
	Actor      string          `json:"actor,omitempty"`
	Repository string          `json:"repository,omitempty"`
	Ref        string          `json:"ref,omitempty"`
	SHA        string          `json:"sha,omitempty"`
	ServerURL  string          `json:"server_url,omitempty"`
	RunID      int64           `json:"run_id,omitempty"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

// ClientPayload is forwarded verbatim as the client_payload of a
// repository_dispatch event.
type ClientPayload struct {
	GitHub       GitHubContext        `json:"github"`
	PullRequest  *github.PullRequest  `json:"pull_request,omitempty"`
	SlashCommand *SlashCommandPayload `json:"slash_command,omitempty"`
}
