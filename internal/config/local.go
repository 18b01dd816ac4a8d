package config

import "path/filepath"

// LocalFileNames are the per-repo config files recognized at a
// repository root, in detection order.
var LocalFileNames = []string{".phconfig", "ph.toml", "ph.json"}

// FindLocal reports the first local config file present in dir.
// The existence check is injected so callers can route it through the
// cached filesystem prober.
func FindLocal(dir string, exists func(path string) bool) (string, bool) {
	for _, name := range LocalFileNames {
		path := filepath.Join(dir, name)
		if exists(path) {
			return path, true
		}
	}
	return "", false
}
