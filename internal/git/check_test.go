package git

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsRepoRoot(t *testing.T) {
	t.Parallel()

	t.Run("marker directory", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		if err := os.Mkdir(filepath.Join(dir, ".git"), 0755); err != nil {
			t.Fatalf("mkdir .git: %v", err)
		}
		if !IsRepoRoot(dir) {
			t.Error("IsRepoRoot() = false for dir with .git directory")
		}
	})

	t.Run("marker file", func(t *testing.T) {
		t.Parallel()
		// worktrees and submodules use a .git file instead of a directory
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, ".git"), []byte("gitdir: ../elsewhere\n"), 0644); err != nil {
			t.Fatalf("write .git file: %v", err)
		}
		if !IsRepoRoot(dir) {
			t.Error("IsRepoRoot() = false for dir with .git file")
		}
	})

	t.Run("no marker", func(t *testing.T) {
		t.Parallel()
		if IsRepoRoot(t.TempDir()) {
			t.Error("IsRepoRoot() = true for empty dir")
		}
	})
}

func TestWorktreeTarget(t *testing.T) {
	t.Parallel()

	t.Run("absolute target", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, ".git"), []byte("gitdir: /repo/.git/worktrees/feature\n"), 0644); err != nil {
			t.Fatalf("write .git file: %v", err)
		}
		target, ok := WorktreeTarget(dir)
		if !ok {
			t.Fatal("WorktreeTarget() ok = false for gitdir file")
		}
		if target != "/repo/.git/worktrees/feature" {
			t.Errorf("WorktreeTarget() = %q, want /repo/.git/worktrees/feature", target)
		}
	})

	t.Run("relative target", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, ".git"), []byte("gitdir: ../main/.git/worktrees/feature\n"), 0644); err != nil {
			t.Fatalf("write .git file: %v", err)
		}
		target, ok := WorktreeTarget(dir)
		if !ok {
			t.Fatal("WorktreeTarget() ok = false for relative gitdir")
		}
		want := filepath.Join(filepath.Dir(dir), "main", ".git", "worktrees", "feature")
		if target != want {
			t.Errorf("WorktreeTarget() = %q, want %q", target, want)
		}
	})

	t.Run("marker directory", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		if err := os.Mkdir(filepath.Join(dir, ".git"), 0755); err != nil {
			t.Fatalf("mkdir .git: %v", err)
		}
		if _, ok := WorktreeTarget(dir); ok {
			t.Error("WorktreeTarget() ok = true for .git directory")
		}
	})

	t.Run("malformed content", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, ".git"), []byte("not a gitdir line\n"), 0644); err != nil {
			t.Fatalf("write .git file: %v", err)
		}
		if _, ok := WorktreeTarget(dir); ok {
			t.Error("WorktreeTarget() ok = true for malformed .git file")
		}
	})

	t.Run("no marker", func(t *testing.T) {
		t.Parallel()
		if _, ok := WorktreeTarget(t.TempDir()); ok {
			t.Error("WorktreeTarget() ok = true for empty dir")
		}
	})
}
