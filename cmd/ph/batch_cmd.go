package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/phkaiser13/peitch/internal/output"
	"github.com/phkaiser13/peitch/internal/ui/progress"
	"github.com/phkaiser13/peitch/internal/ui/static"
)

func newBatchStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "batch-status",
		Short:   "Check every repository under the current directory",
		GroupID: GroupInsight,
		Aliases: []string{"bs"},
		Args:    cobra.NoArgs,
		Long: `Find every git repository below the current directory and report
whether its working tree is clean. Repositories that fail the check
are reported with the failure instead of stopping the scan.`,
		Example: `  ph batch-status            # check everything under .
  ph -C ~/src batch-status   # check a whole source tree`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := workflowFromCmd(cmd)
			if err != nil {
				return err
			}

			// Spinner only when a human is watching and logs are not
			// already streaming
			spin := isatty.IsTerminal(os.Stderr.Fd()) && !verbose
			var sp *progress.Spinner
			if spin {
				sp = progress.NewSpinner("Scanning for repositories...")
				sp.Start()
			}

			results, err := w.BatchStatus(ctx)
			if sp != nil {
				sp.Stop()
			}
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(results))
			var clean, dirty, failed int
			for _, st := range results {
				rows = append(rows, static.RepoStatusRow(st))
				switch {
				case st.Err != nil:
					failed++
				case st.Clean:
					clean++
				default:
					dirty++
				}
			}

			out := output.FromContext(ctx)
			out.Print(static.RenderTable(static.RepoStatusHeaders(), rows))
			out.Printf("%d repositories: %d clean, %d dirty, %d failed\n",
				len(results), clean, dirty, failed)
			return nil
		},
	}

	return cmd
}
