package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phkaiser13/peitch/internal/hooks"
	"github.com/phkaiser13/peitch/internal/output"
	"github.com/phkaiser13/peitch/internal/ui/static"
)

func newHookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "hook",
		Short:   "Run and inspect lifecycle hooks",
		GroupID: GroupWorkflow,
		Long: `Run and inspect lifecycle hooks.

Handlers run in registration order. A failing handler never stops its
siblings; whether failures fail the whole invocation depends on the
hooks.strict setting.`,
		Example: `  ph hook list
  ph hook fire pre-commit
  ph hook fire pre-push`,
	}

	cmd.AddCommand(newHookFireCmd())
	cmd.AddCommand(newHookListCmd())

	return cmd
}

func newHookFireCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "fire <event>",
		Short:             "Run all handlers for an event",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeHookEvent,
		Long: `Run all handlers registered for a lifecycle event.

With hooks.strict set to true, any handler failure fails the command.
Otherwise failures are logged and the command succeeds.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := workflowFromCmd(cmd)
			if err != nil {
				return err
			}

			event := hooks.Event(args[0])
			events := w.Hooks().Events()
			if !containsEvent(events, event) {
				names := make([]string, len(events))
				for i, e := range events {
					names[i] = string(e)
				}
				if match := closestMatch(args[0], names); match != "" {
					return fmt.Errorf("unknown hook event %q (did you mean %q?)", args[0], match)
				}
				return fmt.Errorf("unknown hook event %q (available: %s)", args[0], strings.Join(names, ", "))
			}

			if err := w.FireHook(cmd.Context(), event); err != nil {
				return err
			}
			output.FromContext(cmd.Context()).Printf("%s hooks done\n", event)
			return nil
		},
	}

	return cmd
}

func newHookListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List events and their handlers",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := workflowFromCmd(cmd)
			if err != nil {
				return err
			}

			registry := w.Hooks()
			rows := make([][]string, 0)
			for _, event := range registry.Events() {
				handlers := strings.Join(registry.HandlerNames(event), ", ")
				rows = append(rows, []string{string(event), handlers})
			}
			output.FromContext(cmd.Context()).Print(static.RenderTable([]string{"EVENT", "HANDLERS"}, rows))
			return nil
		},
	}

	return cmd
}

func containsEvent(events []hooks.Event, event hooks.Event) bool {
	for _, e := range events {
		if e == event {
			return true
		}
	}
	return false
}

// completeHookEvent offers the built-in events. Completion runs without
// a session, so the full registry is not available here.
func completeHookEvent(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{
		string(hooks.PreCommit),
		string(hooks.PostCommit),
		string(hooks.PrePush),
	}, cobra.ShellCompDirectiveNoFileComp
}
