//go:build integration

package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phkaiser13/peitch/internal/config"
)

// TestSetup_CreatesProject tests scaffolding a new project.
//
// Scenario: User runs `ph setup go myservice`
// Expected: A repository named myservice exists and its config entries
// are recorded
func TestSetup_CreatesProject(t *testing.T) {
	tmpDir := resolvePath(t, t.TempDir())

	store := testStore(t)
	ctx := testContext(t, tmpDir, store, io.Discard)
	cmd := newSetupCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"go", "myservice"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	gitDir := filepath.Join(tmpDir, "myservice", ".git")
	if _, err := os.Stat(gitDir); err != nil {
		t.Errorf("expected repository at %s: %v", gitDir, err)
	}

	if got, _ := store.Get(config.ProjectKey("go", "name")); got != "myservice" {
		t.Errorf("project.go.name = %q, want %q", got, "myservice")
	}
	if _, ok := store.Get(config.ProjectKey("go", "created")); !ok {
		t.Error("project.go.created should be recorded")
	}
}

// TestSetup_RecordsHookChains tests the per-type hook chains.
//
// Scenario: User runs `ph setup api svc`
// Expected: Pre-commit and pre-push chains are recorded for the type
func TestSetup_RecordsHookChains(t *testing.T) {
	tmpDir := resolvePath(t, t.TempDir())

	store := testStore(t)
	ctx := testContext(t, tmpDir, store, io.Discard)
	cmd := newSetupCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"api", "svc"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if got, _ := store.Get(config.KeyPreCommitChain); got != "lint,test" {
		t.Errorf("pre-commit chain = %q, want %q", got, "lint,test")
	}
	if got, _ := store.Get(config.KeyPrePushChain); got != "build,test" {
		t.Errorf("pre-push chain = %q, want %q", got, "build,test")
	}
}

// TestSetup_UnknownTypeSuggestion tests the typo hint.
//
// Scenario: User runs `ph setup ap x` with a misspelled type
// Expected: Command fails suggesting the closest known type
func TestSetup_UnknownTypeSuggestion(t *testing.T) {
	tmpDir := resolvePath(t, t.TempDir())

	ctx := testContext(t, tmpDir, testStore(t), io.Discard)
	cmd := newSetupCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"ap", "x"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error for unknown project type")
	}
	if !strings.Contains(err.Error(), `did you mean "api"`) {
		t.Errorf("error should suggest api, got: %v", err)
	}
}

// TestSetup_RequiresTypeNonInteractive tests setup without arguments
// when stdin is not a terminal.
//
// Scenario: A script runs `ph setup` with no arguments
// Expected: Command fails listing the available types instead of
// prompting
func TestSetup_RequiresTypeNonInteractive(t *testing.T) {
	tmpDir := resolvePath(t, t.TempDir())

	ctx := testContext(t, tmpDir, testStore(t), io.Discard)
	cmd := newSetupCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error without a project type")
	}
	if !strings.Contains(err.Error(), "project type is required") {
		t.Errorf("error should mention the missing type, got: %v", err)
	}
	if !strings.Contains(err.Error(), "go") {
		t.Errorf("error should list available types, got: %v", err)
	}
}
