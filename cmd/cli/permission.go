package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sevigo/slash-dispatch/internal/core"
	"github.com/sevigo/slash-dispatch/internal/dispatch"
	"github.com/sevigo/slash-dispatch/internal/wire"
)

var permissionCmd = &cobra.Command{
	Use:   "permission <owner/repo> <actor>",
	Short: "Shows an actor's permission level on a repository",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		repo, err := core.ParseRepository(args[0])
		if err != nil {
			return err
		}

		tools, cleanup, err := wire.InitializeTools(ctx)
		if err != nil {
			return fmt.Errorf("failed to initialize services: %w", err)
		}
		defer cleanup()

		level, err := dispatch.NewPermissionQuery(tools.Client).Level(ctx, repo, args[1])
		if err != nil {
			return err
		}

		fmt.Printf("%s on %s: ", args[1], repo)
		if level.Satisfies(core.PermissionWrite) {
			successColor.Println(level)
		} else {
			errorColor.Println(level)
		}
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	rootCmd.AddCommand(permissionCmd)
}
