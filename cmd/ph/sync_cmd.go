package main

import (
	"github.com/spf13/cobra"
)

func newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sync",
		Short:   "Fetch and pull the current branch",
		GroupID: GroupWorkflow,
		Args:    cobra.NoArgs,
		Long: `Synchronize the current repository with its origin.

Fetches with pruning, reports pending local changes, then pulls using
the configured strategy (workflow.pull-strategy: merge, rebase, or
ff-only). When workflow.auto-push is "true", a successful pull is
followed by a push of the current branch.

Sync refuses to run when workflow.auto-sync is set to anything other
than "true".`,
		Example: `  ph sync                # sync the repository you are in
  ph -C ~/src/api sync   # sync a repository elsewhere
  ph sync -v             # show the underlying git commands`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := workflowFromCmd(cmd)
			if err != nil {
				return err
			}
			return w.Sync(cmd.Context())
		},
	}

	return cmd
}
