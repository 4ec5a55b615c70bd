// Package environment resolves the application base directory and names the
// canonical settings keys and file locations used during migration.
package environment

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/azuracast/envmigrate/internal/messages"
)

// Canonical settings keys as read by the application.
const (
	AppEnv     = "APPLICATION_ENV"
	DBHost     = "MYSQL_HOST"
	DBPort     = "MYSQL_PORT"
	DBName     = "MYSQL_DATABASE"
	DBUser     = "MYSQL_USER"
	DBPassword = "MYSQL_PASSWORD"
)

// BaseDirEnvVar overrides the base directory when no flag is given.
const BaseDirEnvVar = "AZURACAST_BASE_DIR"

// Source file locations relative to the base directory.
const (
	MainIniFile        = "env.ini"
	LegacyIniFile      = "app/env.ini"
	LegacyEnvFile      = "app/.env"
	LegacyDBConfigFile = "app/config/db.conf.php"
)

// Environment is the explicit base-directory provider handed to the pipeline.
type Environment struct {
	baseDir string
}

// New returns an Environment rooted at baseDir. A leading ~ is expanded and the
// path is made absolute.
func New(baseDir string) (Environment, error) {
	trimmed := strings.TrimSpace(baseDir)
	if trimmed == "" {
		return Environment{}, errors.New(messages.EnvironmentBaseDirRequired)
	}
	expanded, err := homedir.Expand(trimmed)
	if err != nil {
		return Environment{}, fmt.Errorf(messages.MigrateResolveBaseDirFmt, baseDir, err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return Environment{}, fmt.Errorf(messages.MigrateResolveBaseDirFmt, baseDir, err)
	}
	return Environment{baseDir: abs}, nil
}

// BaseDirectory returns the absolute base directory.
func (e Environment) BaseDirectory() string {
	return e.baseDir
}

// MainIniPath returns the canonical settings file path.
func (e Environment) MainIniPath() string {
	return e.path(MainIniFile)
}

// LegacyIniPath returns the legacy settings file path.
func (e Environment) LegacyIniPath() string {
	return e.path(LegacyIniFile)
}

// LegacyEnvFilePath returns the legacy single-value environment file path.
func (e Environment) LegacyEnvFilePath() string {
	return e.path(LegacyEnvFile)
}

// LegacyDBConfigPath returns the legacy PHP database config path.
func (e Environment) LegacyDBConfigPath() string {
	return e.path(LegacyDBConfigFile)
}

// LegacyPaths returns the three legacy sources removed after a successful write.
func (e Environment) LegacyPaths() []string {
	return []string{e.LegacyIniPath(), e.LegacyEnvFilePath(), e.LegacyDBConfigPath()}
}

func (e Environment) path(rel string) string {
	return filepath.Join(e.baseDir, filepath.FromSlash(rel))
}
