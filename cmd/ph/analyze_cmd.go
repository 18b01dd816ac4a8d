package main

import (
	"github.com/spf13/cobra"

	"github.com/phkaiser13/peitch/internal/output"
	"github.com/phkaiser13/peitch/internal/ui/static"
)

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "analyze",
		Short:   "Break down repository files by category",
		GroupID: GroupInsight,
		Args:    cobra.NoArgs,
		Long: `Walk the repository tree and count files by category: source code,
documentation, configuration, and everything else. Nested repositories
are included; git internals are not.`,
		Example: `  ph analyze
  ph -C ~/src/api analyze`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := workflowFromCmd(cmd)
			if err != nil {
				return err
			}

			stats, err := w.Analyze(ctx)
			if err != nil {
				return err
			}

			out := output.FromContext(ctx)
			out.Print(static.RenderTable(static.FileStatsHeaders(), static.FileStatsRows(stats)))
			return nil
		},
	}

	return cmd
}
