package doctor

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/phkaiser13/peitch/internal/config"
	"github.com/phkaiser13/peitch/internal/git"
	"github.com/phkaiser13/peitch/internal/ui/styles"
	"github.com/phkaiser13/peitch/internal/workflow"
	"github.com/phkaiser13/peitch/internal/workspace"
)

// strictBoolKeys lists the keys read through the strict bool contract.
// Any value other than "true" or "false" silently counts as false,
// which is worth flagging even though it is not an error.
var strictBoolKeys = []string{
	config.KeyAutoSync,
	config.KeyAutoPush,
	config.KeyShowUpstream,
	config.KeyHooksStrict,
	config.KeyPreCommitValidation,
	config.KeyPreCommitCheckTodos,
	config.KeyPostCommitNotify,
	config.KeyBackupEnabled,
	config.KeyUINerdfont,
}

// checkEnvironment probes the external tools ph depends on.
func checkEnvironment(ctx context.Context) []Issue {
	if err := git.CheckGit(); err != nil {
		return []Issue{{
			Key:         "git",
			Description: "git executable not found in PATH",
			FixAction:   "install_git",
		}}
	}

	if _, err := git.Output(ctx, "", "version"); err != nil {
		return []Issue{{
			Key:         "git",
			Description: fmt.Sprintf("git is installed but not responding: %v", err),
			FixAction:   "install_git",
		}}
	}
	return nil
}

// checkConfig finds malformed key names and values the workflows
// cannot use. Each key yields at most one issue.
func checkConfig(store *config.Store) []Issue {
	var issues []Issue

	for _, key := range store.Keys() {
		if err := config.ValidateKey(key); err != nil {
			issues = append(issues, Issue{
				Key:         key,
				Description: "key name is not a valid dot-namespaced name",
				FixAction:   "remove_key",
			})
			continue
		}

		value, _ := store.Get(key)
		switch key {
		case config.KeyPullStrategy:
			switch value {
			case config.PullMerge, config.PullRebase, config.PullFFOnly:
			default:
				issues = append(issues, Issue{
					Key:         key,
					Description: fmt.Sprintf("unrecognized pull strategy %q, sync falls back to merge", value),
					FixAction:   "reset_value",
				})
			}

		case config.KeyPreCommitMaxSize:
			if _, err := workflow.ParseSize(value); err != nil {
				issues = append(issues, Issue{
					Key:         key,
					Description: fmt.Sprintf("unparseable size %q, validation ignores the limit", value),
					FixAction:   "reset_value",
				})
			}

		case config.KeyUITheme:
			if !slices.Contains(styles.ValidNames, value) {
				issues = append(issues, Issue{
					Key:         key,
					Description: fmt.Sprintf("unknown theme %q (available: %s)", value, strings.Join(styles.ValidNames, ", ")),
					FixAction:   "reset_value",
				})
			}

		case config.KeyUIThemeMode:
			if !slices.Contains(styles.ValidModes, value) {
				issues = append(issues, Issue{
					Key:         key,
					Description: fmt.Sprintf("unknown theme mode %q (available: %s)", value, strings.Join(styles.ValidModes, ", ")),
					FixAction:   "reset_value",
				})
			}

		default:
			if slices.Contains(strictBoolKeys, key) && value != "true" && value != "false" {
				issues = append(issues, Issue{
					Key:         key,
					Description: fmt.Sprintf("value %q counts as false under the strict bool contract", value),
					FixAction:   "review_value",
				})
			}
		}
	}
	return issues
}

// checkWorkspace inspects the session directory and the backup target.
// The filesystem is read directly, bypassing the session caches, so a
// stale cached answer never masks an issue.
func checkWorkspace(s *workspace.Session) []Issue {
	var issues []Issue

	if s.Store().IsTrue(config.KeyBackupEnabled) {
		dir := workflow.BackupDir(s.Store())
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			issues = append(issues, Issue{
				Key:         config.KeyBackupDirectory,
				Description: fmt.Sprintf("backup directory %s does not exist", dir),
				FixAction:   "create_backup_dir",
				Path:        dir,
			})
		}
	}

	if target, ok := git.WorktreeTarget(s.Dir()); ok {
		if _, err := os.Stat(target); os.IsNotExist(err) {
			issues = append(issues, Issue{
				Key:         s.Dir(),
				Description: fmt.Sprintf("worktree link points to missing %s", target),
				FixAction:   "repair_worktree",
				Path:        target,
			})
		}
	}
	return issues
}
