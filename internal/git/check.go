package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrGitNotFound indicates git is not installed or not in PATH.
var ErrGitNotFound = fmt.Errorf("git not found: please install git (https://git-scm.com)")

// CheckGit verifies that git is available in PATH.
func CheckGit() error {
	_, err := exec.LookPath("git")
	if err != nil {
		return ErrGitNotFound
	}
	return nil
}

// IsRepoRoot reports whether dir contains the repository marker, without
// shelling out. The marker is a .git directory (regular repo) or a .git
// file (worktree or submodule).
func IsRepoRoot(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	if err != nil {
		return false
	}
	return info.IsDir() || info.Mode().IsRegular()
}

// IsInsideRepo returns true if the given path is inside a git work tree.
// Unlike [IsRepoRoot] this asks git itself, so it is true anywhere below
// the root too.
func IsInsideRepo(ctx context.Context, path string) bool {
	err := runGit(ctx, path, "rev-parse", "--is-inside-work-tree")
	return err == nil
}

// WorktreeTarget resolves the gitdir target of a worktree's .git file.
// Relative targets resolve against dir. ok is false when .git is absent,
// a directory, or not in the "gitdir: <path>" format.
func WorktreeTarget(dir string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(dir, ".git"))
	if err != nil {
		return "", false
	}

	// Only the first line matters; any additional lines are ignored
	line := strings.TrimSpace(string(data))
	if idx := strings.Index(line, "\n"); idx != -1 {
		line = strings.TrimSpace(line[:idx])
	}
	if !strings.HasPrefix(line, "gitdir: ") {
		return "", false
	}
	target := strings.TrimPrefix(line, "gitdir: ")
	if target == "" {
		return "", false
	}

	if !filepath.IsAbs(target) {
		target = filepath.Join(dir, target)
	}
	return filepath.Clean(target), true
}
