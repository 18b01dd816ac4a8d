package doctor

import (
	"context"

	"github.com/phkaiser13/peitch/internal/log"
	"github.com/phkaiser13/peitch/internal/workspace"
)

// Diagnose runs every check against the session and returns the
// gathered issues with per-category counts. Nothing is modified.
func Diagnose(ctx context.Context, s *workspace.Session) Report {
	l := log.FromContext(ctx)
	var r Report

	l.Debugf("doctor", "checking environment")
	env := checkEnvironment(ctx)
	for i := range env {
		env[i].Category = CategoryEnvironment
	}
	r.Issues = append(r.Issues, env...)
	r.Stats.EnvironmentIssues = len(env)

	l.Debugf("doctor", "checking configuration")
	cfg := checkConfig(s.Store())
	for i := range cfg {
		cfg[i].Category = CategoryConfig
	}
	r.Issues = append(r.Issues, cfg...)
	r.Stats.ConfigIssues = len(cfg)
	r.Stats.ConfigValid = len(s.Store().Keys()) - len(cfg)

	l.Debugf("doctor", "checking workspace")
	ws := checkWorkspace(s)
	for i := range ws {
		ws[i].Category = CategoryWorkspace
	}
	r.Issues = append(r.Issues, ws...)
	r.Stats.WorkspaceIssues = len(ws)

	for _, issue := range r.Issues {
		if autoFixable(issue.FixAction) {
			r.Stats.Fixable++
		}
	}

	l.Infof("doctor", "diagnostics complete: %d issue(s)", len(r.Issues))
	return r
}
