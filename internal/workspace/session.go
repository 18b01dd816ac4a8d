package workspace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/phkaiser13/peitch/internal/config"
	"github.com/phkaiser13/peitch/internal/git"
	"github.com/phkaiser13/peitch/internal/log"
	"github.com/phkaiser13/peitch/internal/memo"
)

// Sweep thresholds for the coarse layer and capacities for the recency
// layer underneath it.
const (
	pathThreshold   = 64
	configThreshold = 32
	branchThreshold = 16

	fileExistsCapacity  = 256
	configValueCapacity = 128
)

// lookup carries a config value together with whether the key is set,
// so unset keys cache as cheaply as set ones.
type lookup struct {
	value string
	ok    bool
}

// Session answers workspace questions through its caches. The answers
// are keyed by absolute path (or raw config key), so swapping the
// session directory with InDir never poisons another directory's
// entries.
type Session struct {
	dir   string
	store *config.Store

	paths    *memo.Cache[string, bool]
	configs  *memo.Cache[string, lookup]
	branches *memo.Cache[string, string]

	fileExists   *memo.LRU[string, bool]
	configValues *memo.LRU[string, lookup]
}

// NewSession builds a session rooted at dir, or at the process working
// directory when dir is empty.
func NewSession(dir string, store *config.Store) (*Session, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve working directory: %w", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	s := &Session{dir: abs, store: store}

	s.fileExists = memo.NewLRU(fileExistsCapacity, func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	})
	s.configValues = memo.NewLRU(configValueCapacity, func(key string) lookup {
		value, ok := store.Get(key)
		return lookup{value: value, ok: ok}
	})

	s.paths = memo.New(pathThreshold, func(dir string) bool {
		return s.fileExists.Get(filepath.Join(dir, ".git")) ||
			s.fileExists.Get(filepath.Join(dir, ".git", "HEAD"))
	})
	s.configs = memo.New(configThreshold, func(key string) lookup {
		return s.configValues.Get(key)
	})
	s.branches = memo.New(branchThreshold, func(dir string) string {
		if !s.fileExists.Get(filepath.Join(dir, ".git", "HEAD")) {
			return git.DefaultBranch
		}
		return git.ReadBranch(dir)
	})

	return s, nil
}

// Dir returns the directory the session currently answers for.
func (s *Session) Dir() string {
	return s.dir
}

// Store returns the backing configuration store.
func (s *Session) Store() *config.Store {
	return s.store
}

// IsRepo reports whether the session directory is a repository root.
// The answer is cached per directory until a Reset.
func (s *Session) IsRepo() bool {
	return s.paths.Get(s.dir)
}

// Branch returns the branch checked out in the session directory,
// falling back to "main" when HEAD cannot be resolved. A failed
// resolution is cached like a success and is not retried until the
// cache is cleared, even if HEAD becomes readable later.
func (s *Session) Branch() string {
	return s.branches.Get(s.dir)
}

// FileExists reports whether path exists. Relative paths resolve
// against the session directory.
func (s *Session) FileExists(path string) bool {
	return s.fileExists.Get(s.abs(path))
}

// ConfigGet returns the value for a dot-namespaced key, reading
// through both cache layers. The bool reports whether the key is set.
func (s *Session) ConfigGet(key string) (string, bool) {
	l := s.configs.Get(key)
	return l.value, l.ok
}

// ConfigGetOr returns the value for key, or def when the key is unset.
func (s *Session) ConfigGetOr(key, def string) string {
	if v, ok := s.ConfigGet(key); ok {
		return v
	}
	return def
}

// ConfigTrue reports whether key resolves to the literal "true",
// falling back to def when unset. Any other value counts as false.
func (s *Session) ConfigTrue(key, def string) bool {
	return config.ParseStrictBool(s.ConfigGetOr(key, def))
}

// ConfigSet writes key through to the store and drops the key from
// both cache layers, so the next read observes the new value.
func (s *Session) ConfigSet(key, value string) error {
	if err := s.store.Set(key, value); err != nil {
		return err
	}
	s.configs.Invalidate(key)
	s.configValues.Invalidate(key)
	return nil
}

// ConfigUnset removes key from the store with the same cache
// invalidation as ConfigSet.
func (s *Session) ConfigUnset(key string) error {
	if err := s.store.Unset(key); err != nil {
		return err
	}
	s.configs.Invalidate(key)
	s.configValues.Invalidate(key)
	return nil
}

// InDir runs fn with the session directory swapped to dir and restores
// the previous directory on every exit path, including a panic in fn.
// Relative dirs resolve against the current session directory.
func (s *Session) InDir(dir string, fn func() error) error {
	prev := s.dir
	s.dir = s.abs(dir)
	defer func() { s.dir = prev }()
	return fn()
}

// Reset drops every cached answer in both layers.
func (s *Session) Reset() {
	s.paths.Clear()
	s.configs.Clear()
	s.branches.Clear()
	s.fileExists.Clear()
	s.configValues.Clear()
}

// Optimize sweeps each coarse cache that has outgrown its threshold,
// then clears both recency caches. The two recency clears are always
// paired so one layer never outlives the other's reset.
func (s *Session) Optimize(ctx context.Context) {
	l := log.FromContext(ctx)
	if s.paths.Sweep() {
		l.Debugf("optimize", "cleared path cache")
	}
	if s.configs.Sweep() {
		l.Debugf("optimize", "cleared config cache")
	}
	if s.branches.Sweep() {
		l.Debugf("optimize", "cleared branch cache")
	}
	s.fileExists.Clear()
	s.configValues.Clear()
}

// Stats is a snapshot of every cache layer's counters.
type Stats struct {
	Path         memo.Stats
	Config       memo.Stats
	Branch       memo.Stats
	FileExists   memo.Stats
	ConfigValues memo.Stats
}

// Stats returns the current counters across all five caches.
func (s *Session) Stats() Stats {
	return Stats{
		Path:         s.paths.Stats(),
		Config:       s.configs.Stats(),
		Branch:       s.branches.Stats(),
		FileExists:   s.fileExists.Stats(),
		ConfigValues: s.configValues.Stats(),
	}
}

// abs resolves path against the session directory.
func (s *Session) abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.dir, path)
}
