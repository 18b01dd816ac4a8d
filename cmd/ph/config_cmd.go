package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/phkaiser13/peitch/internal/config"
	"github.com/phkaiser13/peitch/internal/output"
	"github.com/phkaiser13/peitch/internal/ui/prompt"
	"github.com/phkaiser13/peitch/internal/ui/static"
	"github.com/phkaiser13/peitch/internal/workspace"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage ph configuration.

Values live in ~/.config/ph/config.toml as dot-namespaced keys, for
example "workflow.pull-strategy". Boolean settings compare against the
literal string "true"; anything else counts as off.`,
		Example: `  ph config init                            # write the commented template
  ph config set workflow.pull-strategy rebase
  ph config get workflow.pull-strategy
  ph config list`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigUnsetCmd())
	cmd.AddCommand(newConfigListCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Long: `Create the default config file with every setting documented and
commented out. When the file already exists, init asks before
overwriting it (or pass -f to skip the question).`,
		Example: `  ph config init      # create the config file
  ph config init -f   # overwrite an existing config
  ph config init -s   # print the template to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			if stdout {
				out.Print(config.DefaultTemplate())
				return nil
			}

			path := configPath
			if path == "" {
				var err error
				path, err = config.DefaultPath()
				if err != nil {
					return err
				}
			}

			if _, err := os.Stat(path); err == nil && !force {
				if !isatty.IsTerminal(os.Stdin.Fd()) {
					return fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
				}
				res, err := prompt.Confirm(fmt.Sprintf("Overwrite existing config at %s?", path))
				if err != nil {
					return err
				}
				if !res.Confirmed {
					return fmt.Errorf("config init aborted")
				}
				force = true
			}

			created, err := config.InitAt(path, force)
			if err != nil {
				return err
			}

			out.Printf("Created config file: %s\n", created)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config template to stdout")

	return cmd
}

func newConfigGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "get <key>",
		Short:             "Print a config value",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeConfigKeys,
		Example: `  ph config get workflow.pull-strategy
  ph config get hooks.strict`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			session := workspace.FromContext(ctx)
			if session == nil {
				return fmt.Errorf("no active session")
			}

			key := args[0]
			value, ok := session.ConfigGet(key)
			if !ok {
				if match := closestMatch(key, session.Store().Keys()); match != "" {
					return fmt.Errorf("config key %q is not set (did you mean %q?)", key, match)
				}
				return fmt.Errorf("config key %q is not set", key)
			}

			output.FromContext(ctx).Println(value)
			return nil
		},
	}

	return cmd
}

func newConfigSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a config value",
		Args:  cobra.ExactArgs(2),
		Example: `  ph config set workflow.auto-sync true
  ph config set hooks.pre-commit.max-file-size 25MB`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			session := workspace.FromContext(ctx)
			if session == nil {
				return fmt.Errorf("no active session")
			}

			if err := session.ConfigSet(args[0], args[1]); err != nil {
				return err
			}

			output.FromContext(ctx).Printf("%s = %s\n", args[0], args[1])
			return nil
		},
	}

	return cmd
}

func newConfigUnsetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "unset <key>",
		Short:             "Remove a config value",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeConfigKeys,
		Example:           `  ph config unset workflow.auto-push`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			session := workspace.FromContext(ctx)
			if session == nil {
				return fmt.Errorf("no active session")
			}

			return session.ConfigUnset(args[0])
		},
	}

	return cmd
}

func newConfigListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List all set config values",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			session := workspace.FromContext(ctx)
			if session == nil {
				return fmt.Errorf("no active session")
			}

			out := output.FromContext(ctx)
			store := session.Store()
			keys := store.Keys()
			if len(keys) == 0 {
				out.Println("No configuration set")
				return nil
			}

			rows := make([][]string, 0, len(keys))
			for _, key := range keys {
				value, _ := store.Get(key)
				rows = append(rows, []string{key, value})
			}
			out.Print(static.RenderTable([]string{"KEY", "VALUE"}, rows))
			return nil
		},
	}

	return cmd
}

// completeConfigKeys completes key arguments from the set keys in the
// global config. Completion runs without a session, so the store is
// loaded directly.
func completeConfigKeys(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	store, err := loadStore()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return store.Keys(), cobra.ShellCompDirectiveNoFileComp
}
