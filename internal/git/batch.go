package git

import (
	"context"
	"fmt"

	"github.com/phkaiser13/peitch/internal/log"
)

// Stage is one git invocation in an ordered batch. Stages are built
// once and not mutated afterwards.
type Stage struct {
	Name string
	Args []string
}

// NewStage builds a stage whose first argument is the git subcommand,
// labeled by that subcommand.
func NewStage(subcommand string, args ...string) Stage {
	return Stage{Name: subcommand, Args: append([]string{subcommand}, args...)}
}

// RunSequence executes stages strictly in order in dir through run,
// stopping at the first failure. It returns the index of the failed
// stage and an error naming it; on full success the index is -1. Prior
// stages are not rolled back; callers surface partial application.
func RunSequence(ctx context.Context, run Runner, dir string, stages []Stage) (int, error) {
	l := log.FromContext(ctx)
	for i, stage := range stages {
		l.Debugf("batch", "stage %d/%d: git %s", i+1, len(stages), stage.Name)
		if err := run(ctx, dir, stage.Args...); err != nil {
			return i, fmt.Errorf("git %s failed: %w", stage.Name, err)
		}
	}
	return -1, nil
}
