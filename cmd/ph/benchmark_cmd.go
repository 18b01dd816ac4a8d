package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/phkaiser13/peitch/internal/memo"
	"github.com/phkaiser13/peitch/internal/output"
	"github.com/phkaiser13/peitch/internal/ui/static"
)

func newBenchmarkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "benchmark",
		Short:   "Measure cached lookup and git command performance",
		GroupID: GroupInsight,
		Args:    cobra.NoArgs,
		Long: `Run a fixed workload of cached repository lookups and git status
calls, then report the elapsed time and per-cache hit counters. The
elapsed milliseconds are recorded under performance.last-benchmark
for comparison across runs.`,
		Example: `  ph benchmark
  ph config get performance.last-benchmark`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := workflowFromCmd(cmd)
			if err != nil {
				return err
			}

			res, err := w.Benchmark(ctx)
			if err != nil {
				return err
			}

			out := output.FromContext(ctx)
			out.Printf("%d cached lookups and %d git commands in %s\n\n",
				res.Lookups, res.Commands, res.Elapsed.Round(time.Millisecond))

			rows := [][]string{
				cacheRow("path", res.Stats.Path),
				cacheRow("config", res.Stats.Config),
				cacheRow("branch", res.Stats.Branch),
				cacheRow("file-exists", res.Stats.FileExists),
				cacheRow("config-values", res.Stats.ConfigValues),
			}
			out.Print(static.RenderTable([]string{"CACHE", "HITS", "MISSES", "HIT RATE", "ENTRIES"}, rows))
			return nil
		},
	}

	return cmd
}

// cacheRow formats one cache layer's counters as a table row.
func cacheRow(name string, st memo.Stats) []string {
	return []string{
		name,
		strconv.Itoa(st.Hits),
		strconv.Itoa(st.Misses),
		fmt.Sprintf("%.0f%%", st.HitRate()*100),
		strconv.Itoa(st.Entries),
	}
}
