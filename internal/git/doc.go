// Package git provides git operations via shell commands.
//
// All operations use [os/exec.Command] to call the git CLI directly
// rather than using Go git libraries. This approach is simpler, more
// reliable, and ensures compatibility with user configurations (SSH
// keys, credential helpers, aliases).
//
// # Repository Probing
//
// Cheap filesystem probes that never shell out:
//
//   - [IsRepoRoot]: marker check for a .git directory or file
//   - [ReadBranch]: current branch parsed straight from .git/HEAD,
//     falling back to [DefaultBranch] on any failure
//
// # Traversal
//
// Two walks with deliberately different skip rules:
//
//   - [FindRepositories]: discovers repository roots below a start
//     directory and does not descend into a discovered root
//   - [WalkFiles]: visits every file, skipping only .git directories,
//     so nested repositories are included
//
// # Batching
//
// [RunSequence] executes an ordered list of [Stage] invocations and
// stops at the first failure, reporting the failed index for logging.
package git
