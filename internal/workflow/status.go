package workflow

import (
	"context"
	"os"
	"strings"

	"github.com/phkaiser13/peitch/internal/config"
	"github.com/phkaiser13/peitch/internal/log"
)

// StatusReport holds what the status operation gathered.
type StatusReport struct {
	Branch      string
	Summary     string // short branch-aware status text from git
	User        string
	Dir         string
	LocalConfig string // detected local config file, empty when none
}

// Status gathers a short branch-aware status with environment context.
// Upstream ahead/behind info is requested unless status.show-upstream
// turns it off; its outcome is informational and deliberately ignored.
func (w *Workflow) Status(ctx context.Context) (StatusReport, error) {
	l := log.FromContext(ctx)
	s := w.session

	if !s.IsRepo() {
		return StatusReport{}, ErrNotARepository
	}
	out, err := w.output(ctx, s.Dir(), "status", "--short", "--branch")
	if err != nil {
		return StatusReport{}, err
	}

	report := StatusReport{
		Branch:  s.Branch(),
		Summary: strings.TrimRight(string(out), "\n"),
	}

	report.User = os.Getenv("USER")
	if report.User == "" {
		report.User = os.Getenv("USERNAME")
	}
	if report.User == "" {
		report.User = "unknown"
	}
	report.Dir = os.Getenv("PWD")
	if report.Dir == "" {
		report.Dir = s.Dir()
	}

	if s.ConfigTrue(config.KeyShowUpstream, "true") {
		_ = w.run(ctx, s.Dir(), "status", "--ahead-behind")
	}

	if path, ok := config.FindLocal(s.Dir(), s.FileExists); ok {
		l.Infof("config", "local configuration detected: %s", path)
		report.LocalConfig = path
	}
	return report, nil
}
