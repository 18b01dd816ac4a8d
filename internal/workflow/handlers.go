package workflow

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/phkaiser13/peitch/internal/config"
	"github.com/phkaiser13/peitch/internal/git"
	"github.com/phkaiser13/peitch/internal/hooks"
	"github.com/phkaiser13/peitch/internal/log"
)

// todoPattern matches the work markers the validation handler flags.
var todoPattern = regexp.MustCompile(`TODO|FIXME`)

// registerHandlers wires the default handlers. Registration order is
// execution order.
func (w *Workflow) registerHandlers() {
	w.hooks.Register(hooks.PreCommit, "validation", w.validationHook)
	w.hooks.Register(hooks.PreCommit, "backup", w.backupHookFor(hooks.PreCommit))
	w.hooks.Register(hooks.PreCommit, "lint", w.lintHook)
	w.hooks.Register(hooks.PostCommit, "notification", w.notificationHook)
	w.hooks.Register(hooks.PrePush, "backup", w.backupHookFor(hooks.PrePush))
	w.hooks.Register(hooks.PrePush, "lint", w.lintHook)
}

// validationHook checks the working tree before a commit: TODO/FIXME
// markers in source files and files over the configured size limit.
// Each finding is logged; any finding fails the handler.
func (w *Workflow) validationHook(ctx context.Context) error {
	l := log.FromContext(ctx)
	s := w.session

	if !s.ConfigTrue(config.KeyPreCommitValidation, "true") {
		l.Debugf("hook", "pre-commit validation disabled")
		return nil
	}

	checkTodos := s.ConfigTrue(config.KeyPreCommitCheckTodos, "true")
	maxSizeValue := s.ConfigGetOr(config.KeyPreCommitMaxSize, "10MB")
	maxSize, err := ParseSize(maxSizeValue)
	if err != nil {
		l.Warnf("hook", "ignoring bad max-file-size %q: %v", maxSizeValue, err)
		maxSize = 0
	}
	l.Debugf("hook", "validating working tree (todos=%v, max size %s)", checkTodos, maxSizeValue)

	var issues []string
	walkErr := git.WalkFiles(s.Dir(), func(path string, d fs.DirEntry) {
		rel, err := filepath.Rel(s.Dir(), path)
		if err != nil {
			rel = path
		}
		if maxSize > 0 {
			if info, err := d.Info(); err == nil && info.Size() > maxSize {
				issues = append(issues, fmt.Sprintf("%s exceeds %s", rel, maxSizeValue))
				return
			}
		}
		if checkTodos && sourcePattern.MatchString(d.Name()) {
			if data, err := os.ReadFile(path); err == nil && todoPattern.Match(data) {
				issues = append(issues, fmt.Sprintf("%s has TODO/FIXME markers", rel))
			}
		}
	})
	if walkErr != nil {
		return walkErr
	}

	if len(issues) == 0 {
		l.Infof("hook", "pre-commit validation passed")
		return nil
	}
	for _, issue := range issues {
		l.Warnf("hook", "%s", issue)
	}
	return fmt.Errorf("validation found %d issue(s)", len(issues))
}

// backupHookFor returns the backup handler labeled with the event that
// fires it. Off unless backup.enabled is exactly "true"; when on, it
// makes sure the backup directory exists.
func (w *Workflow) backupHookFor(event hooks.Event) hooks.Handler {
	return func(ctx context.Context) error {
		l := log.FromContext(ctx)
		s := w.session

		if !s.ConfigTrue(config.KeyBackupEnabled, "false") {
			return nil
		}
		dir := expandHome(s.ConfigGetOr(config.KeyBackupDirectory, defaultBackupDir()))
		l.Infof("backup", "creating backup for %s", event)
		l.Debugf("backup", "backup location: %s", dir)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to prepare backup directory: %w", err)
		}
		return nil
	}
}

// lintHook picks a linter from the project's marker files and runs it.
// Findings are advisory; the handler never fails the pipeline.
func (w *Workflow) lintHook(ctx context.Context) error {
	l := log.FromContext(ctx)
	s := w.session

	switch {
	case s.FileExists("package.json"):
		if err := w.tool(ctx, s.Dir(), "eslint", ".", "--cache"); err != nil {
			l.Warnf("lint", "eslint found issues: %v", err)
		} else {
			l.Infof("lint", "eslint check passed")
		}
	case s.FileExists("Cargo.toml"):
		if err := w.tool(ctx, s.Dir(), "cargo", "fmt", "--check"); err != nil {
			l.Warnf("lint", "rust format issues found: %v", err)
		} else {
			l.Infof("lint", "rust format check passed")
		}
	case s.FileExists("go.mod"):
		if err := w.tool(ctx, s.Dir(), "go", "fmt", "./..."); err != nil {
			l.Warnf("lint", "go format issues found: %v", err)
		} else {
			l.Infof("lint", "go format check passed")
		}
	default:
		l.Debugf("lint", "no recognized project tooling, skipping lint")
	}
	return nil
}

// notificationHook logs a post-commit notification. Off unless
// hooks.post-commit.notify is exactly "true". The webhook target is
// recorded with the notification, never called.
func (w *Workflow) notificationHook(ctx context.Context) error {
	l := log.FromContext(ctx)
	s := w.session

	l.Infof("hook", "post-commit notification triggered")
	if !s.ConfigTrue(config.KeyPostCommitNotify, "false") {
		return nil
	}

	l.Infof("notify", "commit completed on branch %s", s.Branch())
	if url, ok := s.ConfigGet(config.KeyPostCommitWebhook); ok && url != "" {
		l.Debugf("notify", "would notify %s", url)
	}
	return nil
}

// BackupDir resolves the backup directory from store, applying the same
// default and home expansion as the backup handler.
func BackupDir(store *config.Store) string {
	return expandHome(store.GetOr(config.KeyBackupDirectory, defaultBackupDir()))
}

func defaultBackupDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ph-backups"
	}
	return filepath.Join(home, ".ph-backups")
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
