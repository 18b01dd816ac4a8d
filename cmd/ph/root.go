package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/phkaiser13/peitch/internal/config"
	"github.com/phkaiser13/peitch/internal/git"
	"github.com/phkaiser13/peitch/internal/log"
	"github.com/phkaiser13/peitch/internal/output"
	"github.com/phkaiser13/peitch/internal/ui/styles"
	"github.com/phkaiser13/peitch/internal/workflow"
	"github.com/phkaiser13/peitch/internal/workspace"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	workDir    string
	configPath string
)

// Command group IDs for organizing help output
const (
	GroupWorkflow = "workflow"
	GroupInsight  = "insight"
	GroupConfig   = "config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ph",
	Short: "Cached git workflow automation",
	Long: `ph automates everyday git workflows: syncing branches, scaffolding
projects, firing hook chains, and checking whole directories of
repositories at once.

Repository introspection runs through a per-invocation cache, so
repeated checks of the same paths, config keys, and branches cost a
single git call.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip setup for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}

		// Validate mutually exclusive flags
		if verbose && quiet {
			return fmt.Errorf("--verbose and --quiet are mutually exclusive")
		}

		// Check git is available
		if err := git.CheckGit(); err != nil {
			return err
		}

		store, err := loadStore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}

		session, err := workspace.NewSession(workDir, store)
		if err != nil {
			return err
		}

		// Logger goes to stderr so stdout stays reserved for data
		logger := log.New(os.Stderr, verbose, quiet)

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx = log.WithLogger(ctx, logger)
		ctx = output.WithPrinter(ctx, os.Stdout)
		ctx = workspace.WithSession(ctx, session)
		cmd.SetContext(ctx)

		styles.Init(themeOptions(session))
		return nil
	},
	// Run is not set - shows help when no subcommand provided
}

// loadStore reads the global config, honoring --config when given.
func loadStore() (*config.Store, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}

// themeOptions resolves the UI palette settings from configuration.
func themeOptions(s *workspace.Session) styles.Options {
	opts := styles.Options{
		Name:     s.ConfigGetOr(config.KeyUITheme, ""),
		Mode:     s.ConfigGetOr(config.KeyUIThemeMode, ""),
		Nerdfont: s.ConfigTrue(config.KeyUINerdfont, "false"),
	}
	opts.Primary = s.ConfigGetOr("ui.colors.primary", "")
	opts.Accent = s.ConfigGetOr("ui.colors.accent", "")
	opts.Success = s.ConfigGetOr("ui.colors.success", "")
	opts.Error = s.ConfigGetOr("ui.colors.error", "")
	opts.Muted = s.ConfigGetOr("ui.colors.muted", "")
	opts.Normal = s.ConfigGetOr("ui.colors.normal", "")
	opts.Info = s.ConfigGetOr("ui.colors.info", "")
	opts.Warning = s.ConfigGetOr("ui.colors.warning", "")
	return opts
}

// workflowFromCmd builds a workflow around the session carried by the
// command context.
func workflowFromCmd(cmd *cobra.Command) (*workflow.Workflow, error) {
	session := workspace.FromContext(cmd.Context())
	if session == nil {
		return nil, fmt.Errorf("no active session")
	}
	return workflow.New(session), nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'ph -h' for help")
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output except errors")
	rootCmd.PersistentFlags().StringVarP(&workDir, "dir", "C", "", "Run as if started in this directory")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/ph/config.toml)")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupWorkflow, Title: "Workflow Commands:"},
		&cobra.Group{ID: GroupInsight, Title: "Insight Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Workflow commands
	rootCmd.AddCommand(newSyncCmd())
	rootCmd.AddCommand(newSetupCmd())
	rootCmd.AddCommand(newHookCmd())

	// Insight commands
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newBatchStatusCmd())
	rootCmd.AddCommand(newBenchmarkCmd())
	rootCmd.AddCommand(newOptimizeCmd())

	// Config commands
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(newCompletionCmd())
}
