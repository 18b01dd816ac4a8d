package workflow

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/phkaiser13/peitch/internal/config"
	"github.com/phkaiser13/peitch/internal/log"
)

// DefaultProjectName is used when setup is given no project name.
const DefaultProjectName = "new-project"

// templates maps each project type to its scaffold layout. Entries
// ending in a slash are directories. The layouts are a lookup table
// describing the expected structure, not something setup creates.
var templates = map[string][]string{
	"web":  {"src/", "public/", "docs/", "tests/", ".gitignore", "README.md", "package.json"},
	"api":  {"src/", "tests/", "docs/", "config/", ".gitignore", "README.md", "Dockerfile"},
	"lib":  {"src/", "include/", "tests/", "examples/", "docs/", "CMakeLists.txt", ".gitignore", "README.md"},
	"docs": {"content/", "assets/", "config/", ".gitignore", "README.md"},
	"rust": {"src/", "tests/", "benches/", ".gitignore", "Cargo.toml", "README.md"},
	"go":   {"cmd/", "internal/", "pkg/", "test/", ".gitignore", "go.mod", "README.md"},
}

// ProjectTypes returns the known setup types, sorted.
func ProjectTypes() []string {
	types := make([]string, 0, len(templates))
	for t := range templates {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Template returns the scaffold layout for a project type.
func Template(projectType string) ([]string, bool) {
	entries, ok := templates[projectType]
	return entries, ok
}

// Setup validates the project type, initializes a repository named
// after the project, and records the project's configuration entries,
// including per-type hook chains. An unknown or empty type fails
// before any side effect.
func (w *Workflow) Setup(ctx context.Context, projectType, name string) error {
	l := log.FromContext(ctx)

	if projectType == "" {
		return errors.New("project type is required")
	}
	template, ok := templates[projectType]
	if !ok {
		return fmt.Errorf("unknown project type %q (known: %s)",
			projectType, strings.Join(ProjectTypes(), ", "))
	}
	if name == "" {
		name = DefaultProjectName
	}

	l.Infof("setup", "setting up %s project %s", projectType, name)
	if err := w.run(ctx, w.session.Dir(), "init", name); err != nil {
		return fmt.Errorf("failed to initialize repository: %w", err)
	}
	l.Infof("setup", "created %s project, expecting %d scaffold entries", projectType, len(template))

	updates := [][2]string{
		{config.ProjectKey(projectType, "name"), name},
		{config.ProjectKey(projectType, "created"), time.Now().Format("2006-01-02")},
	}
	switch projectType {
	case "web", "api":
		updates = append(updates,
			[2]string{config.KeyPreCommitChain, "lint,test"},
			[2]string{config.KeyPrePushChain, "build,test"})
	case "rust":
		updates = append(updates,
			[2]string{config.KeyPreCommitChain, "fmt,clippy"},
			[2]string{config.KeyPrePushChain, "test,bench"})
	}
	for _, kv := range updates {
		if err := w.session.ConfigSet(kv[0], kv[1]); err != nil {
			return fmt.Errorf("failed to record %s: %w", kv[0], err)
		}
	}
	return nil
}
