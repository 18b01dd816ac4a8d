//go:build integration

package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

// TestStatus_ShowsBranch tests the status report in a clean repo.
//
// Scenario: User runs `ph status` in a repository on main
// Expected: Output shows the branch summary and environment lines
func TestStatus_ShowsBranch(t *testing.T) {
	tmpDir := resolvePath(t, t.TempDir())
	repoPath := setupTestRepo(t, tmpDir, "myrepo")

	var buf bytes.Buffer
	ctx := testContext(t, repoPath, testStore(t), &buf)
	cmd := newStatusCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("status failed: %v", err)
	}

	out := ansi.Strip(buf.String())
	if !strings.Contains(out, "## main") {
		t.Errorf("output should contain branch summary, got:\n%s", out)
	}
	if !strings.Contains(out, "branch:") {
		t.Errorf("output should contain branch line, got:\n%s", out)
	}
	if !strings.Contains(out, "user:") {
		t.Errorf("output should contain user line, got:\n%s", out)
	}
}

// TestStatus_DirtyFiles tests that uncommitted files show up.
//
// Scenario: User runs `ph status` with an uncommitted file
// Expected: The file appears in the summary
func TestStatus_DirtyFiles(t *testing.T) {
	tmpDir := resolvePath(t, t.TempDir())
	repoPath := setupTestRepo(t, tmpDir, "myrepo")
	makeDirty(t, repoPath)

	var buf bytes.Buffer
	ctx := testContext(t, repoPath, testStore(t), &buf)
	cmd := newStatusCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("status failed: %v", err)
	}

	if !strings.Contains(ansi.Strip(buf.String()), "dirty.txt") {
		t.Errorf("output should list the dirty file, got:\n%s", buf.String())
	}
}

// TestStatus_NotARepository tests status outside a repository.
//
// Scenario: User runs `ph status` in a plain directory
// Expected: Command fails with a repository error
func TestStatus_NotARepository(t *testing.T) {
	tmpDir := resolvePath(t, t.TempDir())

	ctx := testContext(t, tmpDir, testStore(t), io.Discard)
	cmd := newStatusCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error outside a repository")
	}
	if !strings.Contains(err.Error(), "not in a git repository") {
		t.Errorf("error should mention missing repository, got: %v", err)
	}
}
