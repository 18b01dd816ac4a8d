// Package hooks provides the lifecycle event pipeline.
//
// A [Registry] maps event names (pre-commit, post-commit, pre-push) to
// ordered handler lists. Handlers are registered once at startup;
// registration order is execution order and there is no removal.
//
// # Failure Isolation
//
// [Registry.Fire] runs every handler for an event even when earlier
// ones fail. Each failure is logged as a warning and collected; the
// aggregate comes back to the trigger, which decides whether it is
// fatal (the hooks.strict config key controls that at the CLI).
//
// Firing an event nobody registered for is a quiet no-op.
package hooks
