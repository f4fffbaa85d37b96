package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	gogithub "github.com/google/go-github/v73/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/slash-dispatch/internal/core"
	"github.com/sevigo/slash-dispatch/internal/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func workflowPayload(args ...core.Arg) *core.ClientPayload {
	return &core.ClientPayload{
		GitHub: core.GitHubContext{EventName: "issue_comment"},
		SlashCommand: &core.SlashCommandPayload{
			Command: "build",
			Args:    core.Args{Named: core.NewNamedArgs(args...)},
		},
	}
}

var buildCommand = core.Command{
	Command:         "build",
	Repository:      "acme/widgets",
	DispatchType:    core.DispatchWorkflow,
	EventTypeSuffix: "-ci",
}

func TestWorkflowDispatcher_RefOverrideSkipsDefaultBranchLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().
		CreateWorkflowDispatch(gomock.Any(), "acme", "widgets", "build-ci.yml", "feature-x", map[string]interface{}{"env": "staging"}).
		Return(nil).
		Times(1)

	d := NewWorkflowDispatcher(client, discardLogger())
	result, err := d.Dispatch(context.Background(), buildCommand, workflowPayload(
		core.Arg{Name: "ref", Value: "feature-x"},
		core.Arg{Name: "env", Value: "staging"},
	))

	require.NoError(t, err)
	assert.Equal(t, Result{Target: "build-ci.yml", Ref: "feature-x"}, result)
}

func TestWorkflowDispatcher_DefaultBranch(t *testing.T) {
	tests := []struct {
		name string
		args []core.Arg
	}{
		{name: "ref absent", args: []core.Arg{{Name: "env", Value: "prod"}}},
		{name: "ref empty", args: []core.Arg{{Name: "ref", Value: ""}, {Name: "env", Value: "prod"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockClient(ctrl)

			gomock.InOrder(
				client.EXPECT().
					GetRepository(gomock.Any(), "acme", "widgets").
					Return(&gogithub.Repository{DefaultBranch: gogithub.Ptr("trunk")}, nil),
				client.EXPECT().
					CreateWorkflowDispatch(gomock.Any(), "acme", "widgets", "build-ci.yml", "trunk", map[string]interface{}{"env": "prod"}).
					Return(nil),
			)

			d := NewWorkflowDispatcher(client, discardLogger())
			result, err := d.Dispatch(context.Background(), buildCommand, workflowPayload(tt.args...))

			require.NoError(t, err)
			assert.Equal(t, "trunk", result.Ref)
		})
	}
}

func TestWorkflowDispatcher_InputCap(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	// 15 entries: "ref" in third position plus 14 others.
	var args []core.Arg
	for i := 1; i <= 14; i++ {
		args = append(args, core.Arg{Name: fmt.Sprintf("arg%02d", i), Value: fmt.Sprintf("v%d", i)})
		if i == 2 {
			args = append(args, core.Arg{Name: "ref", Value: "release"})
		}
	}
	require.Len(t, args, 15)

	want := map[string]interface{}{}
	for i := 1; i <= 10; i++ {
		want[fmt.Sprintf("arg%02d", i)] = fmt.Sprintf("v%d", i)
	}

	client.EXPECT().
		CreateWorkflowDispatch(gomock.Any(), "acme", "widgets", "build-ci.yml", "release", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, _, _ string, inputs map[string]interface{}) error {
			assert.Len(t, inputs, MaxWorkflowInputs)
			assert.NotContains(t, inputs, "ref")
			assert.Equal(t, want, inputs)
			return nil
		})

	d := NewWorkflowDispatcher(client, discardLogger())
	_, err := d.Dispatch(context.Background(), buildCommand, workflowPayload(args...))
	require.NoError(t, err)
}

func TestWorkflowDispatcher_Failures(t *testing.T) {
	t.Run("missing slash command", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)

		d := NewWorkflowDispatcher(client, discardLogger())
		_, err := d.Dispatch(context.Background(), buildCommand, &core.ClientPayload{})

		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrDispatchFailed)
		assert.ErrorIs(t, err, core.ErrMissingSlashCommand)
	})

	t.Run("default branch lookup fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)
		lookupErr := errors.New("404 Not Found")

		client.EXPECT().GetRepository(gomock.Any(), "acme", "widgets").Return(nil, lookupErr)

		d := NewWorkflowDispatcher(client, discardLogger())
		_, err := d.Dispatch(context.Background(), buildCommand, workflowPayload())

		assert.ErrorIs(t, err, core.ErrDispatchFailed)
		assert.ErrorIs(t, err, lookupErr)
	})

	t.Run("dispatch call fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)
		apiErr := errors.New("422 Unprocessable Entity")

		client.EXPECT().
			CreateWorkflowDispatch(gomock.Any(), "acme", "widgets", "build-ci.yml", "main", gomock.Any()).
			Return(apiErr)

		d := NewWorkflowDispatcher(client, discardLogger())
		_, err := d.Dispatch(context.Background(), buildCommand, workflowPayload(core.Arg{Name: "ref", Value: "main"}))

		assert.ErrorIs(t, err, core.ErrDispatchFailed)
		assert.ErrorIs(t, err, apiErr)
	})

	t.Run("malformed repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)

		cmd := buildCommand
		cmd.Repository = "acme"
		d := NewWorkflowDispatcher(client, discardLogger())
		_, err := d.Dispatch(context.Background(), cmd, workflowPayload())

		assert.ErrorIs(t, err, core.ErrMalformedRepositoryReference)
	})
}

func TestWorkflowInputs(t *testing.T) {
	named := core.NewNamedArgs(
		core.Arg{Name: "ref", Value: "main"},
		core.Arg{Name: "env", Value: "staging"},
		core.Arg{Name: "dry_run", Value: "true"},
	)
	assert.Equal(t, map[string]interface{}{"env": "staging", "dry_run": "true"}, WorkflowInputs(named))
	assert.Empty(t, WorkflowInputs(core.NamedArgs{}))
}
