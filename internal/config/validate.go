package config

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-homedir"
	"go.uber.org/zap/zapcore"

	"github.com/azuracast/envmigrate/internal/messages"
)

var validLogLevels = map[string]zapcore.Level{
	"":      zapcore.InfoLevel,
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// Validate ensures the config values are usable.
// path identifies the config in error messages.
func (c *Config) Validate(path string) error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if _, ok := validLogLevels[c.LogLevel]; !ok {
		return fmt.Errorf(messages.ConfigInvalidLogLevelFmt, path, c.LogLevel)
	}
	if c.BaseDir != "" {
		if _, err := homedir.Expand(c.BaseDir); err != nil {
			return fmt.Errorf(messages.ConfigExpandBaseDirFmt, path, c.BaseDir, err)
		}
	}
	return nil
}
