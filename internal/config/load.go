package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/azuracast/envmigrate/internal/environment"
	"github.com/azuracast/envmigrate/internal/messages"
)

// ErrConfigValidation is a sentinel that wraps config validation failures
// (as opposed to TOML syntax or filesystem errors).
var ErrConfigValidation = errors.New("config validation failed")

// LoadConfig reads and validates the config file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigMissingFileFmt, path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses and validates config TOML data from a source identifier.
// Unknown keys are rejected.
func ParseConfig(data []byte, source string) (*Config, error) {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := cfg.Validate(source); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}
	return &cfg, nil
}

// LoadOptional loads explicitPath when set (a missing file is an error) and
// otherwise DefaultFileName in dir when it exists. With neither, an empty
// Config is returned.
func LoadOptional(explicitPath string, dir string) (*Config, error) {
	if strings.TrimSpace(explicitPath) != "" {
		return LoadConfig(explicitPath)
	}
	path := DefaultPath(dir)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf(messages.ConfigMissingFileFmt, path, err)
	}
	return LoadConfig(path)
}

// ResolveBaseDir picks the base directory by precedence: flag, then the
// AZURACAST_BASE_DIR environment variable, then the config file, then cwd.
// lookupEnv is usually os.LookupEnv.
func ResolveBaseDir(flag string, lookupEnv func(string) (string, bool), cfg *Config, cwd string) string {
	if v := strings.TrimSpace(flag); v != "" {
		return v
	}
	if lookupEnv != nil {
		if v, ok := lookupEnv(environment.BaseDirEnvVar); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	if cfg != nil && strings.TrimSpace(cfg.BaseDir) != "" {
		return strings.TrimSpace(cfg.BaseDir)
	}
	return cwd
}
