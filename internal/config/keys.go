package config

import (
	"fmt"
	"strings"
)

// Well-known configuration keys.
const (
	KeyAutoSync     = "workflow.auto-sync"
	KeyPullStrategy = "workflow.pull-strategy"
	KeyAutoPush     = "workflow.auto-push"

	KeyShowUpstream = "status.show-upstream"

	KeyHooksStrict = "hooks.strict"

	KeyPreCommitValidation = "hooks.pre-commit.validation"
	KeyPreCommitCheckTodos = "hooks.pre-commit.check-todos"
	KeyPreCommitMaxSize    = "hooks.pre-commit.max-file-size"

	KeyPreCommitChain = "hooks.pre-commit.chain"
	KeyPrePushChain   = "hooks.pre-push.chain"

	KeyPostCommitNotify  = "hooks.post-commit.notify"
	KeyPostCommitWebhook = "hooks.post-commit.webhook"

	KeyBackupEnabled   = "backup.enabled"
	KeyBackupDirectory = "backup.directory"

	KeyUITheme     = "ui.theme"
	KeyUIThemeMode = "ui.theme-mode"
	KeyUINerdfont  = "ui.nerdfont"

	KeyLastBenchmark = "performance.last-benchmark"
)

// Pull strategies recognized by "ph sync". Anything else falls back to
// a plain merge.
const (
	PullMerge  = "merge"
	PullRebase = "rebase"
	PullFFOnly = "ff-only"
)

// ProjectKey returns the key recording a field for a project type,
// e.g. ProjectKey("web", "name") -> "project.web.name".
func ProjectKey(projectType, field string) string {
	return "project." + projectType + "." + field
}

// ParseStrictBool reports whether value is the literal string "true".
// "True", "1", "yes", and unset all count as false. Callers depend on
// this exact-match contract; do not loosen it.
func ParseStrictBool(value string) bool {
	return value == "true"
}

// GetOr returns the value for key, or def when the key is unset.
func (s *Store) GetOr(key, def string) string {
	if v, ok := s.Get(key); ok {
		return v
	}
	return def
}

// IsTrue resolves key through the store and applies the strict bool
// contract to the result. Unset keys are false.
func (s *Store) IsTrue(key string) bool {
	v, ok := s.Get(key)
	return ok && ParseStrictBool(v)
}

// ValidateKey checks that key is a well-formed dot-namespaced name:
// non-empty segments of letters, digits, dashes, and underscores.
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("config key must not be empty")
	}
	for _, seg := range strings.Split(key, ".") {
		if seg == "" {
			return fmt.Errorf("config key %q has an empty segment", key)
		}
		for _, r := range seg {
			switch {
			case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			default:
				return fmt.Errorf("config key %q has invalid character %q", key, r)
			}
		}
	}
	return nil
}
