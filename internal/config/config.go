package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Store holds the dot-keyed configuration backed by a TOML file.
// Keys like "workflow.auto-sync" map onto nested TOML tables; values are
// stored as strings. The zero tree means every key is unset.
type Store struct {
	path string
	tree map[string]any
}

// DefaultPath returns the path to the global config file.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "ph", "config.toml"), nil
}

// Load reads the config from ~/.config/ph/config.toml.
// Returns an empty store if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (*Store, error) {
	path, err := DefaultPath()
	if err != nil {
		return &Store{tree: map[string]any{}}, nil
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from an explicit path, with the same
// missing-file behavior as Load.
func LoadFrom(path string) (*Store, error) {
	s := &Store{path: path, tree: map[string]any{}}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, &s.tree); err != nil {
		return s, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return s, nil
}

// Path returns the file this store reads from and writes to.
func (s *Store) Path() string {
	return s.path
}

// Get returns the value for a dot-namespaced key. Scalar values that
// were written as TOML booleans or numbers are returned in their string
// form; a key naming a table is not a value and reports not found.
func (s *Store) Get(key string) (string, bool) {
	segs := strings.Split(key, ".")
	node := s.tree
	for i, seg := range segs {
		v, ok := node[seg]
		if !ok {
			return "", false
		}
		if i == len(segs)-1 {
			switch leaf := v.(type) {
			case string:
				return leaf, true
			case map[string]any:
				return "", false
			default:
				return fmt.Sprint(leaf), true
			}
		}
		sub, ok := v.(map[string]any)
		if !ok {
			return "", false
		}
		node = sub
	}
	return "", false
}

// Set stores value under a dot-namespaced key, creating intermediate
// tables as needed, and saves the file atomically. A segment that
// already holds a scalar cannot become a table.
func (s *Store) Set(key, value string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}

	segs := strings.Split(key, ".")
	node := s.tree
	for _, seg := range segs[:len(segs)-1] {
		v, ok := node[seg]
		if !ok {
			sub := map[string]any{}
			node[seg] = sub
			node = sub
			continue
		}
		sub, ok := v.(map[string]any)
		if !ok {
			return fmt.Errorf("config key %q: %q already holds a value, not a section", key, seg)
		}
		node = sub
	}
	node[segs[len(segs)-1]] = value

	return s.save()
}

// Unset removes a dot-namespaced key if present and saves the file.
// Removing a missing key is a no-op without a write.
func (s *Store) Unset(key string) error {
	segs := strings.Split(key, ".")
	node := s.tree
	for _, seg := range segs[:len(segs)-1] {
		sub, ok := node[seg].(map[string]any)
		if !ok {
			return nil
		}
		node = sub
	}
	leaf := segs[len(segs)-1]
	if _, ok := node[leaf]; !ok {
		return nil
	}
	delete(node, leaf)
	return s.save()
}

// Keys returns every set dot-namespaced key in sorted order.
func (s *Store) Keys() []string {
	var keys []string
	flattenKeys("", s.tree, &keys)
	sort.Strings(keys)
	return keys
}

func flattenKeys(prefix string, node map[string]any, out *[]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := v.(map[string]any); ok {
			flattenKeys(key, sub, out)
			continue
		}
		*out = append(*out, key)
	}
}

// save writes the tree to disk atomically via a temp file rename.
func (s *Store) save() error {
	if s.path == "" {
		return errors.New("config store has no backing file")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(s.tree)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	tempPath := s.path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return err
	}
	return os.Rename(tempPath, s.path)
}

const defaultConfig = `# ph configuration
#
# Boolean settings compare against the literal string "true".
# Any other value, including "True" and "1", counts as off.

# Workflow settings for "ph sync"
# [workflow]
# auto-sync = "true"       # enable ph sync for this machine
# pull-strategy = "merge"  # merge, rebase, or ff-only
# auto-push = "false"      # push to origin after a successful pull

# Status settings for "ph status"
# [status]
# show-upstream = "true"   # also report ahead/behind against upstream

# Hook settings, fired by "ph hook fire <event>"
# [hooks]
# strict = "false"              # "true" makes handler failures fail the command
#
# [hooks.pre-commit]
# validation = "true"           # run the repository validation handler
# check-todos = "true"          # flag TODO/FIXME markers in source files
# max-file-size = "10MB"        # flag files larger than this
#
# [hooks.post-commit]
# notify = "false"              # log a notification after commits
# webhook = ""                  # webhook target recorded with the notification

# Backup handler settings
# [backup]
# enabled = "false"
# directory = "~/.ph-backups"

# Appearance
# [ui]
# theme = "default"        # default, dracula, gruvbox, nord, or none
# theme-mode = "auto"      # auto, light, or dark
# nerdfont = "false"       # use nerd font symbols in status output
`

// DefaultTemplate returns the commented default config file content.
func DefaultTemplate() string {
	return defaultConfig
}

// Init creates a default config file at ~/.config/ph/config.toml.
// If force is true, overwrites an existing file.
// Returns the path to the created file.
func Init(force bool) (string, error) {
	path, err := DefaultPath()
	if err != nil {
		return "", err
	}
	return InitAt(path, force)
}

// InitAt writes the default config template to an explicit path.
func InitAt(path string, force bool) (string, error) {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", err
	}

	return path, nil
}
