package workflow

import (
	"context"
	"fmt"
	"io/fs"
	"regexp"
	"strings"

	"github.com/phkaiser13/peitch/internal/git"
)

// sourcePattern matches the extensions counted as source code.
var sourcePattern = regexp.MustCompile(`\.(js|ts|py|c|cpp|h|hpp|go|rs)$`)

// FileStats counts a repository's files by category.
type FileStats struct {
	Total  int
	Source int
	Docs   int
	Config int
}

// Analyze walks the repository and counts files by category. The walk
// skips .git directories but does visit nested repositories, unlike
// the discovery walk batch status uses.
func (w *Workflow) Analyze(ctx context.Context) (FileStats, error) {
	s := w.session
	if !s.IsRepo() {
		return FileStats{}, ErrNotARepository
	}

	var stats FileStats
	err := git.WalkFiles(s.Dir(), func(path string, d fs.DirEntry) {
		stats.Total++
		name := d.Name()
		switch {
		case sourcePattern.MatchString(name):
			stats.Source++
		case hasSuffix(name, ".md", ".txt", ".rst"):
			stats.Docs++
		case hasSuffix(name, ".json", ".toml", ".yaml", ".yml", ".ini"):
			stats.Config++
		}
	})
	if err != nil {
		return FileStats{}, fmt.Errorf("failed to analyze repository files: %w", err)
	}
	return stats, nil
}

func hasSuffix(name string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}
