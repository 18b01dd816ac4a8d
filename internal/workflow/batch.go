package workflow

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/phkaiser13/peitch/internal/git"
	"github.com/phkaiser13/peitch/internal/log"
)

// RepoStatus is one repository's result from a batch check.
type RepoStatus struct {
	Path  string
	Name  string
	Clean bool
	Err   error
}

// BatchStatus discovers every repository below the session directory
// and reports each one's working-tree state. The session directory is
// swapped per repository and restored on every exit path; one failing
// repository does not stop the rest.
func (w *Workflow) BatchStatus(ctx context.Context) ([]RepoStatus, error) {
	l := log.FromContext(ctx)
	s := w.session

	repos, err := git.FindRepositories(s.Dir())
	if err != nil {
		return nil, err
	}
	if len(repos) == 0 {
		return nil, ErrNoRepositories
	}
	l.Infof("batch", "found %d repositories", len(repos))

	results := make([]RepoStatus, 0, len(repos))
	for _, repo := range repos {
		status := RepoStatus{Path: repo, Name: filepath.Base(repo)}
		err := s.InDir(repo, func() error {
			l.Infof("batch", "checking repository %s", status.Name)
			out, err := w.output(ctx, s.Dir(), "status", "--porcelain")
			if err != nil {
				return err
			}
			status.Clean = strings.TrimSpace(string(out)) == ""
			return nil
		})
		if err != nil {
			status.Err = err
			l.Errorf("batch", "failed to check %s: %v", repo, err)
		} else if status.Clean {
			l.Infof("batch", "repository %s: clean", status.Name)
		} else {
			l.Warnf("batch", "repository %s: has changes", status.Name)
		}
		results = append(results, status)
	}
	return results, nil
}
