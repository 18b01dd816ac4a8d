//go:build integration

package main

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/phkaiser13/peitch/internal/config"
	"github.com/phkaiser13/peitch/internal/log"
	"github.com/phkaiser13/peitch/internal/output"
	"github.com/phkaiser13/peitch/internal/workspace"
)

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// setupTestRepo creates a git repo with an initial commit in dir/name.
// Returns the absolute path to the created repo (with symlinks resolved).
func setupTestRepo(t *testing.T, dir, name string) string {
	t.Helper()

	// Resolve symlinks in dir (needed for macOS where /var -> /private/var)
	dir = resolvePath(t, dir)

	repoPath := filepath.Join(dir, name)
	if err := os.MkdirAll(repoPath, 0755); err != nil {
		t.Fatalf("failed to create repo dir: %v", err)
	}

	// Initialize git repo; -b pins the branch name regardless of the
	// host's init.defaultBranch
	cmds := [][]string{
		{"git", "init", "-b", "main"},
		{"git", "config", "user.email", "test@test.com"},
		{"git", "config", "user.name", "Test User"},
		{"git", "config", "commit.gpgsign", "false"},
	}

	for _, args := range cmds {
		cmd := exec.Command(args[0], args[1:]...)
		cmd.Dir = repoPath
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("failed to run %v: %v\n%s", args, err, out)
		}
	}

	// Create initial commit
	readmePath := filepath.Join(repoPath, "README.md")
	if err := os.WriteFile(readmePath, []byte("# "+name+"\n"), 0644); err != nil {
		t.Fatalf("failed to write README: %v", err)
	}

	runGitCommand(t, repoPath, "git", "add", "README.md")
	runGitCommand(t, repoPath, "git", "commit", "-m", "Initial commit")

	return repoPath
}

// setupTestRepoWithLocalOrigin creates a git repo with a local bare repo
// as origin and main pushed with upstream tracking, so pull and push
// work against it. Returns the path to the repo (not the bare origin).
func setupTestRepoWithLocalOrigin(t *testing.T, dir, name string) string {
	t.Helper()

	dir = resolvePath(t, dir)

	// Create bare repo as origin
	barePath := filepath.Join(dir, name+".git")
	if err := os.MkdirAll(barePath, 0755); err != nil {
		t.Fatalf("failed to create bare repo dir: %v", err)
	}
	runGitCommand(t, barePath, "git", "init", "--bare")

	repoPath := setupTestRepo(t, dir, name)

	// Point origin at the bare repo and push with tracking
	runGitCommand(t, repoPath, "git", "remote", "add", "origin", barePath)
	runGitCommand(t, repoPath, "git", "push", "-u", "origin", "main")

	return repoPath
}

// makeDirty creates uncommitted changes in a repo.
func makeDirty(t *testing.T, repoPath string) {
	t.Helper()

	filePath := filepath.Join(repoPath, "dirty.txt")
	if err := os.WriteFile(filePath, []byte("uncommitted changes\n"), 0644); err != nil {
		t.Fatalf("failed to create dirty file: %v", err)
	}
}

// makeCommit creates a file and commits it in the repo.
func makeCommit(t *testing.T, repoPath, filename string) {
	t.Helper()
	filePath := filepath.Join(repoPath, filename)
	if err := os.WriteFile(filePath, []byte("content for "+filename+"\n"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	runGitCommand(t, repoPath, "git", "add", filename)
	runGitCommand(t, repoPath, "git", "commit", "-m", "Add "+filename)
}

// runGitCommand runs a git command and returns output
func runGitCommand(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to run %v: %v\n%s", args, err, out)
	}
	return string(out)
}

// testStore returns a config store backed by a file in a temp dir, so
// tests never touch the user's config.
func testStore(t *testing.T) *config.Store {
	t.Helper()
	store, err := config.LoadFrom(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	return store
}

// testContext returns a context with a quiet logger, a printer writing
// to out, and a session rooted at dir backed by store.
func testContext(t *testing.T, dir string, store *config.Store, out io.Writer) context.Context {
	t.Helper()

	session, err := workspace.NewSession(dir, store)
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}

	ctx := context.Background()
	ctx = log.WithLogger(ctx, log.New(io.Discard, false, true))
	ctx = output.WithPrinter(ctx, out)
	ctx = workspace.WithSession(ctx, session)
	return ctx
}
