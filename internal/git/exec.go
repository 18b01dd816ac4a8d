package git

import (
	"context"

	"github.com/phkaiser13/peitch/internal/cmd"
)

// Runner executes one git invocation in dir. The workflow layer takes a
// Runner so tests can script outcomes without a git binary.
type Runner func(ctx context.Context, dir string, args ...string) error

// OutputRunner is a Runner variant that captures stdout.
type OutputRunner func(ctx context.Context, dir string, args ...string) ([]byte, error)

// gitArgs prepends -C <dir> to args if dir is non-empty.
func gitArgs(dir string, args []string) []string {
	if dir == "" {
		return args
	}
	return append([]string{"-C", dir}, args...)
}

// runGit executes a git command with context support and verbose logging.
func runGit(ctx context.Context, dir string, args ...string) error {
	return cmd.RunContext(ctx, "", "git", gitArgs(dir, args)...)
}

// outputGit executes a git command with context support and verbose logging,
// returning stdout.
func outputGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	return cmd.OutputContext(ctx, "", "git", gitArgs(dir, args)...)
}

// Run executes a git command with context support and verbose logging.
// This is the exported version of runGit for use by commands; it also
// serves as the default Runner.
func Run(ctx context.Context, dir string, args ...string) error {
	return runGit(ctx, dir, args...)
}

// Output executes a git command and returns stdout. This is the
// exported version of outputGit and the default OutputRunner.
func Output(ctx context.Context, dir string, args ...string) ([]byte, error) {
	return outputGit(ctx, dir, args...)
}
