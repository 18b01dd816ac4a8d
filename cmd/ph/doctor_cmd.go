package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phkaiser13/peitch/internal/doctor"
	"github.com/phkaiser13/peitch/internal/output"
	"github.com/phkaiser13/peitch/internal/workspace"
)

func newDoctorCmd() *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:     "doctor",
		Short:   "Diagnose environment and configuration issues",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Diagnose problems with the ph environment and configuration.

Checks:
- git is installed and responds
- configuration key names are well formed
- configuration values are usable: pull strategy, file size limits,
  themes, and strict boolean spellings
- the backup directory exists while backups are enabled
- a worktree link points at an existing repository

With --fix, malformed keys are removed, unusable values are reset to
their defaults, and the backup directory is created. Everything else
gets manual guidance.`,
		Example: `  ph doctor          # report issues
  ph doctor --fix    # also repair what can be repaired`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			session := workspace.FromContext(ctx)
			if session == nil {
				return fmt.Errorf("no active session")
			}
			out := output.FromContext(ctx)

			out.Println("Running diagnostics...")
			report := doctor.Diagnose(ctx, session)
			printDoctorSummary(out, report.Stats)

			if len(report.Issues) == 0 {
				out.Println("\n✓ No issues found")
				return nil
			}

			out.Printf("\nFound %d issue(s):\n", len(report.Issues))
			printDoctorIssues(out, report.Issues)

			if !fix {
				if report.Stats.Fixable > 0 {
					out.Println("\nRun 'ph doctor --fix' to repair.")
				}
				return nil
			}

			res := doctor.Fix(session, report.Issues)
			out.Println()
			for _, line := range res.Fixed {
				out.Printf("  ✓ %s\n", line)
			}
			for _, line := range res.Failed {
				out.Printf("  ✗ %s\n", line)
			}
			for _, line := range res.Manual {
				out.Printf("  ⚠ %s\n", line)
			}
			out.Printf("\nFixed %d of %d issue(s).\n", len(res.Fixed), len(report.Issues))
			return nil
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Repair issues where possible")

	return cmd
}

// printDoctorSummary prints the per-category counters.
func printDoctorSummary(out *output.Printer, stats doctor.Stats) {
	out.Println()
	if stats.EnvironmentIssues == 0 {
		out.Println("  ✓ environment healthy")
	} else {
		out.Printf("  ✗ %d environment issue(s)\n", stats.EnvironmentIssues)
	}
	out.Printf("  ✓ %d config key(s) valid\n", stats.ConfigValid)
	if stats.ConfigIssues > 0 {
		out.Printf("  ⚠ %d config issue(s)\n", stats.ConfigIssues)
	}
	if stats.WorkspaceIssues > 0 {
		out.Printf("  ⚠ %d workspace issue(s)\n", stats.WorkspaceIssues)
	}
}

// printDoctorIssues groups and prints issues in a fixed category order.
func printDoctorIssues(out *output.Printer, issues []doctor.Issue) {
	byCategory := make(map[doctor.IssueCategory][]doctor.Issue)
	for _, issue := range issues {
		byCategory[issue.Category] = append(byCategory[issue.Category], issue)
	}

	categoryNames := map[doctor.IssueCategory]string{
		doctor.CategoryEnvironment: "Environment issues",
		doctor.CategoryConfig:      "Configuration issues",
		doctor.CategoryWorkspace:   "Workspace issues",
	}

	for _, cat := range []doctor.IssueCategory{doctor.CategoryEnvironment, doctor.CategoryConfig, doctor.CategoryWorkspace} {
		catIssues := byCategory[cat]
		if len(catIssues) == 0 {
			continue
		}

		out.Printf("\n%s:\n", categoryNames[cat])
		for _, issue := range catIssues {
			out.Printf("  • %s: %s\n", issue.Key, issue.Description)
		}
	}
}
