package git

import (
	"io/fs"
	"path/filepath"
)

// FindRepositories walks the tree below startDir and returns every
// repository root it finds. Once a directory below the start is
// identified as a root it is emitted and its children are skipped, so a
// repository nested inside another is never reported. Sibling subtrees
// are still visited. The start directory itself is emitted when it is a
// root, but its children are walked regardless so repositories beside it
// are found too.
func FindRepositories(startDir string) ([]string, error) {
	var repos []string

	err := filepath.WalkDir(startDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// unreadable subtree, keep walking the rest
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == ".git" {
			return fs.SkipDir
		}
		if IsRepoRoot(path) {
			repos = append(repos, path)
			if path != startDir {
				return fs.SkipDir
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return repos, nil
}

// WalkFiles visits every file below startDir, skipping .git directories
// at any depth and nothing else. Files of nested repositories are
// visited; this walk's skip rule is narrower than the one in
// [FindRepositories] on purpose.
func WalkFiles(startDir string, fn func(path string, d fs.DirEntry)) error {
	return filepath.WalkDir(startDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return fs.SkipDir
			}
			return nil
		}
		fn(path, d)
		return nil
	})
}
