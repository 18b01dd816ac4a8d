package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/phkaiser13/peitch/internal/memo"
	"github.com/phkaiser13/peitch/internal/output"
	"github.com/phkaiser13/peitch/internal/ui/static"
)

func newOptimizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "optimize",
		Short:   "Sweep oversized session caches",
		GroupID: GroupInsight,
		Args:    cobra.NoArgs,
		Long: `Sweep the session caches: coarse layers are cleared only once they
grow past their thresholds, while the bounded recent-lookup layers are
always reset. Each layer's entry count is reported before and after
the sweep. Use -v to see which layers were swept.`,
		Example: `  ph optimize
  ph optimize -v`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := workflowFromCmd(cmd)
			if err != nil {
				return err
			}

			before := w.Session().Stats()
			w.Optimize(ctx)
			after := w.Session().Stats()

			out := output.FromContext(ctx)
			rows := [][]string{
				sizeRow("path", before.Path, after.Path),
				sizeRow("config", before.Config, after.Config),
				sizeRow("branch", before.Branch, after.Branch),
				sizeRow("file-exists", before.FileExists, after.FileExists),
				sizeRow("config-values", before.ConfigValues, after.ConfigValues),
			}
			out.Print(static.RenderTable([]string{"CACHE", "BEFORE", "AFTER"}, rows))
			out.Println("caches optimized")
			return nil
		},
	}

	return cmd
}

// sizeRow formats one cache layer's entry count around the sweep.
func sizeRow(name string, before, after memo.Stats) []string {
	return []string{name, strconv.Itoa(before.Entries), strconv.Itoa(after.Entries)}
}
