package doctor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phkaiser13/peitch/internal/config"
	"github.com/phkaiser13/peitch/internal/workspace"
)

func testStore(t *testing.T) *config.Store {
	t.Helper()
	store, err := config.LoadFrom(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	return store
}

func testSession(t *testing.T, dir string, store *config.Store) *workspace.Session {
	t.Helper()
	session, err := workspace.NewSession(dir, store)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return session
}

func setKey(t *testing.T, store *config.Store, key, value string) {
	t.Helper()
	if err := store.Set(key, value); err != nil {
		t.Fatalf("Set(%s) error = %v", key, err)
	}
}

// loadRawStore writes raw TOML and loads a store from it, for planting
// keys that Set would reject.
func loadRawStore(t *testing.T, raw string) *config.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	store, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	return store
}

func TestCheckConfigAcceptsUsableValues(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	setKey(t, store, config.KeyPullStrategy, "rebase")
	setKey(t, store, config.KeyPreCommitMaxSize, "5MB")
	setKey(t, store, config.KeyUITheme, "nord")
	setKey(t, store, config.KeyUIThemeMode, "dark")
	setKey(t, store, config.KeyAutoSync, "false")
	setKey(t, store, config.KeyHooksStrict, "true")
	setKey(t, store, "project.web.name", "shop") // free-form keys are never flagged

	if issues := checkConfig(store); len(issues) != 0 {
		t.Errorf("checkConfig() = %v, want no issues", issues)
	}
}

func TestCheckConfigFlagsUnusableValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		key        string
		value      string
		wantAction string
	}{
		{"pull strategy", config.KeyPullStrategy, "rebse", "reset_value"},
		{"max file size", config.KeyPreCommitMaxSize, "huge", "reset_value"},
		{"theme", config.KeyUITheme, "solarized", "reset_value"},
		{"theme mode", config.KeyUIThemeMode, "night", "reset_value"},
		{"bool spelling", config.KeyAutoSync, "yes", "review_value"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := testStore(t)
			setKey(t, store, tt.key, tt.value)

			issues := checkConfig(store)
			if len(issues) != 1 {
				t.Fatalf("checkConfig() = %v, want one issue", issues)
			}
			if issues[0].Key != tt.key {
				t.Errorf("issue key = %q, want %q", issues[0].Key, tt.key)
			}
			if issues[0].FixAction != tt.wantAction {
				t.Errorf("issue action = %q, want %q", issues[0].FixAction, tt.wantAction)
			}
			if !strings.Contains(issues[0].Description, tt.value) {
				t.Errorf("description %q does not name the value %q", issues[0].Description, tt.value)
			}
		})
	}
}

func TestCheckConfigMalformedKey(t *testing.T) {
	t.Parallel()

	// Set rejects malformed keys, so plant one in the file directly.
	store := loadRawStore(t, "[workflow]\n\"auto sync\" = \"true\"\n")

	issues := checkConfig(store)
	if len(issues) != 1 {
		t.Fatalf("checkConfig() = %v, want one issue", issues)
	}
	if issues[0].Key != "workflow.auto sync" {
		t.Errorf("issue key = %q, want the malformed key", issues[0].Key)
	}
	if issues[0].FixAction != "remove_key" {
		t.Errorf("issue action = %q, want remove_key", issues[0].FixAction)
	}
}

func TestCheckWorkspaceBackupDir(t *testing.T) {
	t.Parallel()

	t.Run("missing while enabled", func(t *testing.T) {
		t.Parallel()
		store := testStore(t)
		missing := filepath.Join(t.TempDir(), "backups")
		setKey(t, store, config.KeyBackupEnabled, "true")
		setKey(t, store, config.KeyBackupDirectory, missing)

		issues := checkWorkspace(testSession(t, t.TempDir(), store))
		if len(issues) != 1 {
			t.Fatalf("checkWorkspace() = %v, want one issue", issues)
		}
		if issues[0].FixAction != "create_backup_dir" {
			t.Errorf("issue action = %q, want create_backup_dir", issues[0].FixAction)
		}
		if issues[0].Path != missing {
			t.Errorf("issue path = %q, want %q", issues[0].Path, missing)
		}
	})

	t.Run("missing while disabled", func(t *testing.T) {
		t.Parallel()
		store := testStore(t)
		setKey(t, store, config.KeyBackupDirectory, filepath.Join(t.TempDir(), "backups"))

		if issues := checkWorkspace(testSession(t, t.TempDir(), store)); len(issues) != 0 {
			t.Errorf("checkWorkspace() = %v, want no issues while backups are off", issues)
		}
	})

	t.Run("present while enabled", func(t *testing.T) {
		t.Parallel()
		store := testStore(t)
		setKey(t, store, config.KeyBackupEnabled, "true")
		setKey(t, store, config.KeyBackupDirectory, t.TempDir())

		if issues := checkWorkspace(testSession(t, t.TempDir(), store)); len(issues) != 0 {
			t.Errorf("checkWorkspace() = %v, want no issues", issues)
		}
	})
}

func TestCheckWorkspaceWorktreeLink(t *testing.T) {
	t.Parallel()

	t.Run("dangling link", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		target := filepath.Join(dir, "gone", ".git", "worktrees", "feature")
		if err := os.WriteFile(filepath.Join(dir, ".git"), []byte("gitdir: "+target+"\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		issues := checkWorkspace(testSession(t, dir, testStore(t)))
		if len(issues) != 1 {
			t.Fatalf("checkWorkspace() = %v, want one issue", issues)
		}
		if issues[0].FixAction != "repair_worktree" {
			t.Errorf("issue action = %q, want repair_worktree", issues[0].FixAction)
		}
		if !strings.Contains(issues[0].Description, target) {
			t.Errorf("description %q does not name the missing target", issues[0].Description)
		}
	})

	t.Run("intact link", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		target := filepath.Join(dir, "meta")
		if err := os.MkdirAll(target, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, ".git"), []byte("gitdir: "+target+"\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		if issues := checkWorkspace(testSession(t, dir, testStore(t))); len(issues) != 0 {
			t.Errorf("checkWorkspace() = %v, want no issues", issues)
		}
	})

	t.Run("regular repository", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		if err := os.MkdirAll(filepath.Join(dir, ".git"), 0o755); err != nil {
			t.Fatal(err)
		}

		if issues := checkWorkspace(testSession(t, dir, testStore(t))); len(issues) != 0 {
			t.Errorf("checkWorkspace() = %v, want no issues for .git directory", issues)
		}
	})
}

func TestFixResetsUnusableValue(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	setKey(t, store, config.KeyPullStrategy, "rebse")
	session := testSession(t, t.TempDir(), store)

	res := Fix(session, checkConfig(store))
	if len(res.Fixed) != 1 || len(res.Failed) != 0 || len(res.Manual) != 0 {
		t.Fatalf("Fix() = %+v, want one fixed repair", res)
	}
	if _, ok := store.Get(config.KeyPullStrategy); ok {
		t.Error("pull strategy still set after reset")
	}
}

func TestFixRemovesMalformedKey(t *testing.T) {
	t.Parallel()

	store := loadRawStore(t, "[workflow]\n\"auto sync\" = \"true\"\n")
	session := testSession(t, t.TempDir(), store)

	res := Fix(session, checkConfig(store))
	if len(res.Fixed) != 1 {
		t.Fatalf("Fix() = %+v, want one fixed repair", res)
	}
	if keys := store.Keys(); len(keys) != 0 {
		t.Errorf("Keys() = %v, want empty store after removal", keys)
	}
}

func TestFixCreatesBackupDir(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	missing := filepath.Join(t.TempDir(), "backups")
	setKey(t, store, config.KeyBackupEnabled, "true")
	setKey(t, store, config.KeyBackupDirectory, missing)
	session := testSession(t, t.TempDir(), store)

	res := Fix(session, checkWorkspace(session))
	if len(res.Fixed) != 1 {
		t.Fatalf("Fix() = %+v, want one fixed repair", res)
	}
	info, err := os.Stat(missing)
	if err != nil || !info.IsDir() {
		t.Errorf("backup directory not created: %v", err)
	}
}

func TestFixLeavesAmbiguousBoolAlone(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	setKey(t, store, config.KeyAutoSync, "yes")
	session := testSession(t, t.TempDir(), store)

	res := Fix(session, checkConfig(store))
	if len(res.Fixed) != 0 || len(res.Manual) != 1 {
		t.Fatalf("Fix() = %+v, want manual guidance only", res)
	}
	if v, ok := store.Get(config.KeyAutoSync); !ok || v != "yes" {
		t.Errorf("auto-sync = %q, %v; want the value untouched", v, ok)
	}
}

func TestReportFixable(t *testing.T) {
	t.Parallel()

	r := Report{Issues: []Issue{
		{Key: "a", FixAction: "reset_value"},
		{Key: "b", FixAction: "review_value"},
		{Key: "c", FixAction: "create_backup_dir"},
		{Key: "d", FixAction: "install_git"},
	}}
	fixable := r.Fixable()
	if len(fixable) != 2 {
		t.Fatalf("Fixable() = %v, want two issues", fixable)
	}
	if fixable[0].Key != "a" || fixable[1].Key != "c" {
		t.Errorf("Fixable() keys = %q, %q; want a and c", fixable[0].Key, fixable[1].Key)
	}
}
