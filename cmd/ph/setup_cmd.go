package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/phkaiser13/peitch/internal/ui/prompt"
	"github.com/phkaiser13/peitch/internal/workflow"
)

func newSetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "setup [type] [name]",
		Short:   "Scaffold a new project repository",
		GroupID: GroupWorkflow,
		Args:    cobra.MaximumNArgs(2),
		Long: `Create a new project directory, initialize a git repository in it,
and record the project metadata in configuration.

Project types carry a scaffold manifest and, for some types, default
hook chains (for example web projects get lint and test chains). When
run without arguments in a terminal, setup asks for the type and name
interactively.`,
		Example: `  ph setup web shop        # create ./shop as a web project
  ph setup rust            # rust project with the default name
  ph setup                 # pick type and name interactively`,
		ValidArgsFunction: completeProjectType,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := workflowFromCmd(cmd)
			if err != nil {
				return err
			}

			var projectType, name string
			if len(args) > 0 {
				projectType = args[0]
			}
			if len(args) > 1 {
				name = args[1]
			}

			if projectType == "" {
				projectType, name, err = askProjectDetails()
				if err != nil {
					return err
				}
			}

			// Catch typos before any directory is created
			if _, ok := workflow.Template(projectType); !ok {
				if match := closestMatch(projectType, workflow.ProjectTypes()); match != "" {
					return fmt.Errorf("unknown project type %q (did you mean %q?)", projectType, match)
				}
			}

			if err := confirmReinit(w.Session().Dir(), name); err != nil {
				return err
			}

			return w.Setup(cmd.Context(), projectType, name)
		},
	}

	return cmd
}

// confirmReinit asks before initializing into a directory that already
// exists. Non-interactive runs proceed without asking; git init on an
// existing repository is non-destructive.
func confirmReinit(baseDir, name string) error {
	if name == "" {
		name = workflow.DefaultProjectName
	}
	if _, err := os.Stat(filepath.Join(baseDir, name)); err != nil {
		return nil
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return nil
	}
	res, err := prompt.Confirm(fmt.Sprintf("Directory %s already exists, initialize anyway?", name))
	if err != nil {
		return err
	}
	if !res.Confirmed {
		return fmt.Errorf("setup cancelled")
	}
	return nil
}

// askProjectDetails prompts for the project type and name. Requires an
// interactive terminal; scripts must pass arguments instead.
func askProjectDetails() (projectType, name string, err error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return "", "", fmt.Errorf("project type is required (available: %s)",
			strings.Join(workflow.ProjectTypes(), ", "))
	}

	sel, err := prompt.Select("Project type", workflow.ProjectTypes())
	if err != nil {
		return "", "", err
	}
	if sel.Cancelled {
		return "", "", fmt.Errorf("setup cancelled")
	}

	text, err := prompt.TextInput("Project name", "new-project")
	if err != nil {
		return "", "", err
	}
	if text.Cancelled {
		return "", "", fmt.Errorf("setup cancelled")
	}

	return sel.Value, text.Value, nil
}

// completeProjectType provides completion for the setup type argument
func completeProjectType(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return workflow.ProjectTypes(), cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}
