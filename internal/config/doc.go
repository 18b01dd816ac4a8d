// Package config handles loading and persistence of ph configuration.
//
// Configuration is read from ~/.config/ph/config.toml and addressed by
// dot-namespaced keys ("workflow.auto-sync", "hooks.pre-commit.validation").
// Keys map onto nested TOML tables; values are strings. Saves go through
// a temp file and rename so a crash never leaves a half-written config.
//
// # Boolean Settings
//
// Boolean keys follow a strict-string contract: only the literal value
// "true" counts as on. "True", "1", "yes", and unset are all off. See
// [ParseStrictBool]. Calling code depends on this exact match.
//
// # Well-Known Keys
//
//   - workflow.auto-sync: gate for "ph sync"
//   - workflow.pull-strategy: merge, rebase, or ff-only
//   - workflow.auto-push: push to origin after a successful pull
//   - status.show-upstream: report ahead/behind in "ph status"
//   - hooks.*: lifecycle hook handler settings
//   - backup.*: backup handler settings
//   - project.<type>.*: entries recorded by "ph setup"
//
// # Local Config Files
//
// A repository can carry a local config marker (.phconfig, ph.toml, or
// ph.json); [FindLocal] reports the first present. Detection goes
// through an injected existence check so it benefits from the cached
// filesystem prober.
package config
