package main

import (
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/phkaiser13/peitch/internal/log"
	"github.com/phkaiser13/peitch/internal/output"
	"github.com/phkaiser13/peitch/internal/ui/styles"
)

func newStatusCmd() *cobra.Command {
	var copyBranch bool

	cmd := &cobra.Command{
		Use:     "status",
		Short:   "Show an enhanced repository status",
		GroupID: GroupInsight,
		Aliases: []string{"st"},
		Args:    cobra.NoArgs,
		Long: `Show the current repository status: the short git summary, the
active branch, and who and where the check ran. When
status.show-upstream is "true" (the default), the upstream
ahead/behind counters are refreshed as well.

A local configuration file (.phconfig, ph.toml, or ph.json) in the
repository root is reported when present.`,
		Example: `  ph status
  ph status --copy-branch   # also copy the branch name to the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := workflowFromCmd(cmd)
			if err != nil {
				return err
			}

			report, err := w.Status(ctx)
			if err != nil {
				return err
			}

			out := output.FromContext(ctx)
			if report.Summary != "" {
				out.Println(report.Summary)
				out.Println()
			}
			out.Printf("branch:    %s\n", styles.AccentStyle.Render(report.Branch))
			out.Printf("user:      %s\n", report.User)
			out.Printf("directory: %s\n", report.Dir)
			if report.LocalConfig != "" {
				out.Printf("local config: %s\n", report.LocalConfig)
			}

			if copyBranch {
				l := log.FromContext(ctx)
				if err := clipboard.WriteAll(report.Branch); err != nil {
					l.Warnf("status", "failed to copy branch to clipboard: %v", err)
				} else {
					l.Infof("status", "copied branch %q to clipboard", report.Branch)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&copyBranch, "copy-branch", false, "Copy the current branch name to the clipboard")

	return cmd
}
