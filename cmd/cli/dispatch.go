package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sevigo/slash-dispatch/internal/core"
	"github.com/sevigo/slash-dispatch/internal/gitutil"
	"github.com/sevigo/slash-dispatch/internal/wire"
)

var dispatchOpts struct {
	args      []string
	ref       string
	pr        string
	commentID int64
	actor     string
	source    string
}

var dispatchCmd = &cobra.Command{
	Use:   "dispatch <command> [unnamed-args...]",
	Short: "Runs a configured command synchronously",
	Example: `  dispatch-cli dispatch build --actor octocat --source acme/app --arg env=staging --ref feature-x
  dispatch-cli dispatch deploy --actor octocat --pr https://github.com/acme/app/pull/42 --comment-id 1001`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		source, prNumber, err := resolvePullRequest(dispatchOpts.pr, dispatchOpts.source)
		if err != nil {
			return err
		}

		payload, err := buildPayload(args[0], args[1:], dispatchOpts.args, dispatchOpts.ref)
		if err != nil {
			return err
		}

		tools, cleanup, err := wire.InitializeTools(ctx)
		if err != nil {
			return fmt.Errorf("failed to initialize services: %w", err)
		}
		defer cleanup()

		command, err := tools.Commands.Lookup(args[0])
		if err != nil {
			return err
		}

		req := &core.DispatchRequest{
			Command:           command,
			Payload:           *payload,
			Actor:             dispatchOpts.actor,
			SourceRepository:  source,
			CommentID:         dispatchOpts.commentID,
			PullRequestNumber: prNumber,
		}

		titleColor.Printf("Dispatching %s to %s (%s)\n", command.Command, command.Repository, command.DispatchType)
		if err := tools.Engine.Run(ctx, req); err != nil {
			errorColor.Printf("✗ %v\n", err)
			return err
		}
		successColor.Printf("✓ %s dispatched\n", command.Command)
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	f := dispatchCmd.Flags()
	f.StringArrayVar(&dispatchOpts.args, "arg", nil, "Named argument as key=value, may be repeated")
	f.StringVar(&dispatchOpts.ref, "ref", "", "Git ref for workflow dispatches, defaults to the target's default branch")
	f.StringVar(&dispatchOpts.pr, "pr", "", "Pull request to attach to the payload: a number, owner/repo#number or a pull request URL")
	f.Int64Var(&dispatchOpts.commentID, "comment-id", 0, "Comment to acknowledge with a reaction")
	f.StringVar(&dispatchOpts.actor, "actor", "", "GitHub login whose permission is checked")
	f.StringVar(&dispatchOpts.source, "source", "", "Repository the command was issued in, as owner/repo")
	_ = dispatchCmd.MarkFlagRequired("actor")
	rootCmd.AddCommand(dispatchCmd)
}

// resolvePullRequest returns the source repository and pull request number.
// A pull request given as a URL or shorthand also names the source repository.
func resolvePullRequest(pr, source string) (string, int, error) {
	if pr == "" {
		if source == "" {
			return "", 0, errors.New("--source is required unless --pr names the repository")
		}
		return source, 0, nil
	}
	if number, err := strconv.Atoi(pr); err == nil {
		if source == "" {
			return "", 0, errors.New("--source is required when --pr is a bare number")
		}
		return source, number, nil
	}

	loc, err := gitutil.ParsePullRequest(pr)
	if err != nil {
		return "", 0, err
	}
	if source != "" && source != loc.Repository.String() {
		return "", 0, fmt.Errorf("--source %s does not match pull request repository %s", source, loc.Repository)
	}
	return loc.Repository.String(), loc.Number, nil
}

// buildPayload assembles the client payload the way a chat front end would
// after parsing "/command unnamed... key=value...". An explicit ref is placed
// first among the named arguments.
func buildPayload(command string, unnamed, named []string, ref string) (*core.ClientPayload, error) {
	args := core.NewNamedArgs()
	if ref != "" {
		args.Set(core.RefArgument, ref)
	}
	for _, kv := range named {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --arg %q, expected key=value", kv)
		}
		if key == core.RefArgument && ref != "" {
			return nil, errors.New("ref given both as --ref and --arg")
		}
		args.Set(key, value)
	}

	if unnamed == nil {
		unnamed = []string{}
	}

	all := make([]string, 0, len(unnamed)+args.Len())
	all = append(all, unnamed...)
	for _, a := range args.Pairs() {
		all = append(all, a.Name+"="+a.Value)
	}

	return &core.ClientPayload{
		GitHub: core.GitHubContext{EventName: "cli"},
		SlashCommand: &core.SlashCommandPayload{
			Command: command,
			Args: core.Args{
				All:     strings.Join(all, " "),
				Unnamed: unnamed,
				Named:   args,
			},
		},
	}, nil
}
