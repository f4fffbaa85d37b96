package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/sevigo/slash-dispatch/internal/wire"
)

var (
	outputJSON bool
	runsLimit  int
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Lists recorded dispatch runs, newest first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		tools, cleanup, err := wire.InitializeTools(ctx)
		if err != nil {
			return fmt.Errorf("failed to initialize services: %w", err)
		}
		defer cleanup()

		if !tools.Config.Database.Enabled() {
			dimColor.Println("No database configured, runs are not recorded.")
			return nil
		}

		runs, err := tools.Store.ListRuns(ctx, runsLimit)
		if err != nil {
			return fmt.Errorf("failed to retrieve runs: %w", err)
		}

		if outputJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(runs)
		}

		if len(runs) == 0 {
			dimColor.Println("No dispatch runs recorded yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "STARTED\tCOMMAND\tACTOR\tTARGET\tSTATE\tERROR")
		for _, run := range runs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				run.StartedAt.Format(time.RFC822),
				run.Command,
				run.Actor,
				run.TargetRepository+" "+run.Target,
				run.State,
				run.Error,
			)
		}
		return w.Flush()
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	runsCmd.Flags().BoolVar(&outputJSON, "json", false, "Output runs as JSON")
	runsCmd.Flags().IntVar(&runsLimit, "limit", 50, "Maximum number of runs to show")
	rootCmd.AddCommand(runsCmd)
}
