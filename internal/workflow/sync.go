package workflow

import (
	"context"
	"fmt"

	"github.com/phkaiser13/peitch/internal/config"
	"github.com/phkaiser13/peitch/internal/git"
	"github.com/phkaiser13/peitch/internal/log"
)

// Sync brings the current branch up to date with its remote: fetch and
// a working-tree check as one batch, a pull using the configured
// strategy, then an optional push. A failed push is only a warning;
// everything before it is a hard failure.
func (w *Workflow) Sync(ctx context.Context) error {
	l := log.FromContext(ctx)
	s := w.session

	if !s.IsRepo() {
		return ErrNotARepository
	}
	if !s.ConfigTrue(config.KeyAutoSync, "true") {
		return ErrSyncDisabled
	}

	branch := s.Branch()
	l.Infof("sync", "syncing branch %s", branch)

	stages := []git.Stage{
		git.NewStage("fetch", "--all", "--prune"),
		git.NewStage("status", "--porcelain"),
	}
	if _, err := git.RunSequence(ctx, w.run, s.Dir(), stages); err != nil {
		return err
	}

	strategy := s.ConfigGetOr(config.KeyPullStrategy, config.PullMerge)
	pullArgs := []string{"pull"}
	switch strategy {
	case config.PullRebase:
		pullArgs = append(pullArgs, "--rebase")
	case config.PullFFOnly:
		pullArgs = append(pullArgs, "--ff-only")
	case config.PullMerge:
	default:
		// unrecognized strategies pull with a plain merge
		l.Debugf("sync", "unknown pull-strategy %q, pulling with merge", strategy)
	}
	if err := w.run(ctx, s.Dir(), pullArgs...); err != nil {
		return fmt.Errorf("pull failed, possible conflicts: %w", err)
	}

	if s.ConfigTrue(config.KeyAutoPush, "false") {
		if err := w.run(ctx, s.Dir(), "push", "origin", branch); err != nil {
			l.Warnf("sync", "push to origin/%s failed: %v", branch, err)
		} else {
			l.Infof("sync", "pushed changes to origin/%s", branch)
		}
	}

	l.Infof("sync", "sync completed")
	return nil
}
