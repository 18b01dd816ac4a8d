//go:build integration

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/phkaiser13/peitch/internal/config"
)

// TestHookFire_CleanRepo tests firing pre-commit in a healthy repo.
//
// Scenario: User runs `ph hook fire pre-commit` with a clean tree
// Expected: All handlers pass and completion is reported
func TestHookFire_CleanRepo(t *testing.T) {
	tmpDir := resolvePath(t, t.TempDir())
	repoPath := setupTestRepo(t, tmpDir, "myrepo")

	var buf bytes.Buffer
	ctx := testContext(t, repoPath, testStore(t), &buf)
	cmd := newHookCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"fire", "pre-commit"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("hook fire failed: %v", err)
	}

	if !strings.Contains(buf.String(), "pre-commit hooks done") {
		t.Errorf("output should report completion, got:\n%s", buf.String())
	}
}

// TestHookFire_UnknownEventSuggestion tests the typo hint.
//
// Scenario: User runs `ph hook fire pre-comit`
// Expected: Command fails suggesting pre-commit
func TestHookFire_UnknownEventSuggestion(t *testing.T) {
	tmpDir := resolvePath(t, t.TempDir())
	repoPath := setupTestRepo(t, tmpDir, "myrepo")

	ctx := testContext(t, repoPath, testStore(t), io.Discard)
	cmd := newHookCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"fire", "pre-comit"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error for unknown event")
	}
	if !strings.Contains(err.Error(), `did you mean "pre-commit"`) {
		t.Errorf("error should suggest pre-commit, got: %v", err)
	}
}

// TestHookFire_StrictValidationFailure tests strict mode.
//
// Scenario: User sets hooks.strict with work markers in a source file
// and runs `ph hook fire pre-commit`
// Expected: Command fails with the validation findings
func TestHookFire_StrictValidationFailure(t *testing.T) {
	tmpDir := resolvePath(t, t.TempDir())
	repoPath := setupTestRepo(t, tmpDir, "myrepo")

	src := []byte("package main\n\n// TODO: handle the nil case\n")
	if err := os.WriteFile(filepath.Join(repoPath, "main.go"), src, 0644); err != nil {
		t.Fatalf("failed to write source file: %v", err)
	}

	store := testStore(t)
	if err := store.Set(config.KeyHooksStrict, "true"); err != nil {
		t.Fatalf("failed to set hooks.strict: %v", err)
	}

	ctx := testContext(t, repoPath, store, io.Discard)
	cmd := newHookCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"fire", "pre-commit"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error in strict mode")
	}
	if !strings.Contains(err.Error(), "validation") {
		t.Errorf("error should come from the validation handler, got: %v", err)
	}
}

// TestHookFire_LenientValidationFailure tests the default mode.
//
// Scenario: Same findings as the strict test, hooks.strict unset
// Expected: Failures are logged but the command succeeds
func TestHookFire_LenientValidationFailure(t *testing.T) {
	tmpDir := resolvePath(t, t.TempDir())
	repoPath := setupTestRepo(t, tmpDir, "myrepo")

	src := []byte("package main\n\n// FIXME: resolve before release\n")
	if err := os.WriteFile(filepath.Join(repoPath, "main.go"), src, 0644); err != nil {
		t.Fatalf("failed to write source file: %v", err)
	}

	ctx := testContext(t, repoPath, testStore(t), io.Discard)
	cmd := newHookCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"fire", "pre-commit"})

	if err := cmd.Execute(); err != nil {
		t.Errorf("handler failures should not fail the command without hooks.strict: %v", err)
	}
}

// TestHookList_ShowsHandlers tests the hook listing.
//
// Scenario: User runs `ph hook list`
// Expected: Every event appears with its handlers in order
func TestHookList_ShowsHandlers(t *testing.T) {
	tmpDir := resolvePath(t, t.TempDir())
	repoPath := setupTestRepo(t, tmpDir, "myrepo")

	var buf bytes.Buffer
	ctx := testContext(t, repoPath, testStore(t), &buf)
	cmd := newHookCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"list"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("hook list failed: %v", err)
	}

	out := ansi.Strip(buf.String())
	for _, want := range []string{"EVENT", "pre-commit", "post-commit", "pre-push", "validation, backup, lint"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q, got:\n%s", want, out)
		}
	}
}
