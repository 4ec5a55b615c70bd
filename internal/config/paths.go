package config

import "path/filepath"

// DefaultPath returns the config file looked up in dir.
func DefaultPath(dir string) string {
	return filepath.Join(dir, DefaultFileName)
}
