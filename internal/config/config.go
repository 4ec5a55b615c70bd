// Package config loads the optional envmigrate.toml tool configuration.
package config

import (
	"go.uber.org/zap/zapcore"
)

// DefaultFileName is looked up in the working directory when no --config flag is given.
const DefaultFileName = "envmigrate.toml"

// Config is the tool configuration. Every field is optional.
type Config struct {
	BaseDir  string       `toml:"base_dir"`
	LogLevel string       `toml:"log_level"`
	Output   OutputConfig `toml:"output"`
}

// OutputConfig controls how env.ini is rendered.
type OutputConfig struct {
	EscapeQuotes bool `toml:"escape_quotes"`
}

// Level returns the configured zap level, defaulting to info.
func (c *Config) Level() zapcore.Level {
	if c == nil {
		return zapcore.InfoLevel
	}
	if level, ok := validLogLevels[c.LogLevel]; ok {
		return level
	}
	return zapcore.InfoLevel
}
