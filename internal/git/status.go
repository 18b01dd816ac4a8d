package git

import (
	"context"
	"strings"
)

// IsClean reports whether the repository at dir has no uncommitted
// changes, judged by empty porcelain status output.
func IsClean(ctx context.Context, dir string) (bool, error) {
	out, err := outputGit(ctx, dir, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(string(out)) == "", nil
}
