package doctor

import (
	"fmt"
	"os"

	"github.com/phkaiser13/peitch/internal/workspace"
)

// FixResult summarizes one repair pass.
type FixResult struct {
	Fixed  []string // applied repairs, in order
	Failed []string // repairs that errored
	Manual []string // guidance for issues Fix cannot repair
}

// autoFixable reports whether Fix repairs action without user input.
func autoFixable(action string) bool {
	switch action {
	case "remove_key", "reset_value", "create_backup_dir":
		return true
	}
	return false
}

// Fix applies the automatic repairs for issues and collects guidance
// for the rest. Config repairs go through the session so cached values
// are invalidated together with the store.
func Fix(s *workspace.Session, issues []Issue) FixResult {
	var res FixResult

	for _, issue := range issues {
		switch issue.FixAction {
		case "remove_key":
			if err := s.ConfigUnset(issue.Key); err != nil {
				res.Failed = append(res.Failed, fmt.Sprintf("remove %q: %v", issue.Key, err))
			} else {
				res.Fixed = append(res.Fixed, fmt.Sprintf("removed malformed key %q", issue.Key))
			}

		case "reset_value":
			if err := s.ConfigUnset(issue.Key); err != nil {
				res.Failed = append(res.Failed, fmt.Sprintf("reset %q: %v", issue.Key, err))
			} else {
				res.Fixed = append(res.Fixed, fmt.Sprintf("reset %q to its default", issue.Key))
			}

		case "create_backup_dir":
			if err := os.MkdirAll(issue.Path, 0o755); err != nil {
				res.Failed = append(res.Failed, fmt.Sprintf("create %s: %v", issue.Path, err))
			} else {
				res.Fixed = append(res.Fixed, fmt.Sprintf("created backup directory %s", issue.Path))
			}

		case "install_git":
			res.Manual = append(res.Manual, "install git (https://git-scm.com) and re-run")

		case "repair_worktree":
			res.Manual = append(res.Manual, fmt.Sprintf("run 'git worktree repair %s' from the parent repository", issue.Key))

		case "review_value":
			res.Manual = append(res.Manual, fmt.Sprintf("set %s to \"true\" or \"false\", or unset it", issue.Key))
		}
	}
	return res
}
