// Package cmd provides helpers for executing external commands with
// proper error handling.
//
// This package wraps [os/exec.Cmd] to capture stderr and include it in
// error messages, making command failures more informative for users.
// The context variants echo the command line and its duration through
// the context logger when verbose mode is on.
//
// # Usage
//
//	if err := cmd.RunContext(ctx, repoDir, "git", "fetch", "--all"); err != nil {
//	    // err carries the command's stderr when available
//	    return fmt.Errorf("fetch failed: %w", err)
//	}
//
//	out, err := cmd.OutputContext(ctx, repoDir, "git", "status", "--porcelain")
//
// # Design Notes
//
// ph shells out to the git CLI rather than using a Go git library. This
// is simpler, more reliable, and ensures compatibility with user
// configurations (SSH keys, credential helpers, hooks, etc.).
package cmd
