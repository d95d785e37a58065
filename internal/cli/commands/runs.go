package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/semstack-labs/semstudio/internal/state"
)

// NewRunsCommand creates the runs command.
func NewRunsCommand() *cobra.Command {
	var limit int
	var format string

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Show fit-run history",
		Long: `List recorded fit runs from the project state database, newest first.

Every fit invocation is recorded with its session, dataset shape, and
outcome, whether it is triggered from the CLI or the web UI.`,
		Example: `  # Last 20 runs
  semstudio runs

  # Full detail for one run
  semstudio runs show 4f1c2a`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			runs, err := cmdCtx.Store.ListRuns(limit)
			if err != nil {
				return err
			}
			return renderRuns(cmd.OutOrStdout(), runs, format)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: table, json, csv, markdown")
	cmd.AddCommand(newRunsShowCommand())

	return cmd
}

func newRunsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show one recorded fit run, including its model specification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			run, err := findRun(cmdCtx, args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Run:          %s\n", run.ID)
			_, _ = fmt.Fprintf(w, "Session:      %s\n", run.SessionID)
			_, _ = fmt.Fprintf(w, "Status:       %s\n", run.Status)
			_, _ = fmt.Fprintf(w, "Observations: %d\n", run.Observations)
			_, _ = fmt.Fprintf(w, "Variables:    %d\n", run.Variables)
			_, _ = fmt.Fprintf(w, "Started:      %s\n", run.StartedAt.Format("2006-01-02 15:04:05"))
			if run.CompletedAt != nil {
				_, _ = fmt.Fprintf(w, "Completed:    %s\n", run.CompletedAt.Format("2006-01-02 15:04:05"))
			}
			if run.Error != "" {
				_, _ = fmt.Fprintf(w, "Error:        %s\n", run.Error)
			}
			_, _ = fmt.Fprintln(w)
			_, _ = fmt.Fprintln(w, "Model Specification:")
			_, _ = fmt.Fprintln(w, run.Spec)
			return nil
		},
	}
}

// findRun resolves a full run ID or a unique ID prefix.
func findRun(cmdCtx *CommandContext, id string) (*state.Run, error) {
	if run, err := cmdCtx.Store.GetRun(id); err == nil {
		return run, nil
	}

	runs, err := cmdCtx.Store.ListRuns(1000)
	if err != nil {
		return nil, err
	}
	var match *state.Run
	for _, run := range runs {
		if strings.HasPrefix(run.ID, id) {
			if match != nil {
				return nil, fmt.Errorf("run ID prefix %q is ambiguous", id)
			}
			match = run
		}
	}
	if match == nil {
		return nil, fmt.Errorf("run not found: %s", id)
	}
	return match, nil
}
