package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/azuracast/envmigrate/internal/settings"
)

// WriteFile writes content to path, creating parent directories as needed.
// t is the active test; path is the destination file.
func WriteFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// ReadFile returns the content of path, failing the test when it cannot be read.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// WithWorkingDir runs fn with dir as the current working directory and restores the previous directory.
// t is the active test; dir is the temporary working directory for fn.
func WithWorkingDir(t *testing.T, dir string, fn func()) {
	t.Helper()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer func() {
		if err := os.Chdir(cwd); err != nil {
			t.Fatalf("restore chdir: %v", err)
		}
	}()
	fn()
}

// Mapping builds a settings mapping from alternating key, value arguments.
// A trailing key without a value is ignored.
func Mapping(kv ...string) *settings.Mapping {
	m := settings.New()
	for i := 0; i+1 < len(kv); i += 2 {
		m.Set(kv[i], kv[i+1])
	}
	return m
}

// Pairs returns the contents of m as a plain map for equality assertions.
func Pairs(m *settings.Mapping) map[string]string {
	out := make(map[string]string, m.Len())
	m.Each(func(key string, value string) { out[key] = value })
	return out
}
