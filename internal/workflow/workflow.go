package workflow

import (
	"context"
	"errors"

	"github.com/phkaiser13/peitch/internal/cmd"
	"github.com/phkaiser13/peitch/internal/config"
	"github.com/phkaiser13/peitch/internal/git"
	"github.com/phkaiser13/peitch/internal/hooks"
	"github.com/phkaiser13/peitch/internal/log"
	"github.com/phkaiser13/peitch/internal/workspace"
)

var (
	// ErrNotARepository means the session directory has no repository marker.
	ErrNotARepository = errors.New("not in a git repository")

	// ErrSyncDisabled means workflow.auto-sync turned the sync workflow off.
	ErrSyncDisabled = errors.New("auto-sync is disabled in configuration")

	// ErrNoRepositories means a batch walk found nothing to check.
	ErrNoRepositories = errors.New("no git repositories found")
)

// toolRunner executes a non-git tool, such as a linter.
type toolRunner func(ctx context.Context, dir, name string, args ...string) error

// Workflow drives the user-facing operations against one session.
// The git and tool runners are swappable so tests can script outcomes.
type Workflow struct {
	session *workspace.Session
	run     git.Runner
	output  git.OutputRunner
	tool    toolRunner
	hooks   *hooks.Registry
}

// New builds a workflow around session with the real runners and the
// default hook handlers registered.
func New(session *workspace.Session) *Workflow {
	w := &Workflow{
		session: session,
		run:     git.Run,
		output:  git.Output,
		tool:    cmd.RunContext,
		hooks:   hooks.NewRegistry(),
	}
	w.registerHandlers()
	return w
}

// Session returns the session this workflow operates on.
func (w *Workflow) Session() *workspace.Session {
	return w.session
}

// Hooks returns the registry holding the default handlers.
func (w *Workflow) Hooks() *hooks.Registry {
	return w.hooks
}

// FireHook runs the handlers registered for event. Handler failures
// are aggregated by the registry; they fail this call only when
// hooks.strict is the literal "true".
func (w *Workflow) FireHook(ctx context.Context, event hooks.Event) error {
	err := w.hooks.Fire(ctx, event)
	if err == nil {
		return nil
	}
	if w.session.ConfigTrue(config.KeyHooksStrict, "false") {
		return err
	}
	log.FromContext(ctx).Warnf("hooks", "handler failures ignored (hooks.strict is off): %v", err)
	return nil
}
