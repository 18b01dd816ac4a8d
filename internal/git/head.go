package git

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultBranch is reported whenever the real branch cannot be resolved.
const DefaultBranch = "main"

// branchPattern matches the symbolic-ref line of a .git/HEAD file.
var branchPattern = regexp.MustCompile(`^ref: refs/heads/(.+)`)

// ReadBranch resolves the current branch of the repository at dir by
// reading .git/HEAD directly, without shelling out. It fails soft: a
// missing or unreadable HEAD, a detached head, or any unexpected content
// all yield [DefaultBranch]. Callers cache the result either way.
func ReadBranch(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, ".git", "HEAD"))
	if err != nil {
		return DefaultBranch
	}

	head := strings.TrimSpace(string(data))
	if m := branchPattern.FindStringSubmatch(head); m != nil {
		return m[1]
	}
	return DefaultBranch
}
