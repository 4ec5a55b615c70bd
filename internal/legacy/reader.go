// Package legacy locates and extracts configuration from the settings files
// that predate the canonical env.ini.
package legacy

import (
	"errors"
	"io/fs"
	"strings"

	"go.uber.org/zap"

	"github.com/azuracast/envmigrate/internal/environment"
	"github.com/azuracast/envmigrate/internal/settings"
	"github.com/azuracast/envmigrate/internal/settingsfile"
)

// SourceKind identifies one of the known configuration origins.
type SourceKind string

const (
	// MainIni is the canonical env.ini, read so re-runs keep existing values.
	MainIni SourceKind = "main_ini"
	// LegacyIni is the older app/env.ini.
	LegacyIni SourceKind = "legacy_ini"
	// LegacyEnvFile is app/.env whose whole content is the application environment.
	LegacyEnvFile SourceKind = "legacy_env_file"
	// LegacyDBConfig is the PHP array returned by app/config/db.conf.php.
	LegacyDBConfig SourceKind = "legacy_db_config"
)

// Field names produced by the non-ini sources.
const (
	FieldValue    = "value"
	FieldUser     = "user"
	FieldPassword = "password"
)

// System abstracts the filesystem reads needed by the reader.
type System interface {
	ReadFile(name string) ([]byte, error)
}

// Partial is the extraction result of one existing source. Values hold only
// the readable fields when the source was malformed.
type Partial struct {
	Kind   SourceKind
	Path   string
	Values *settings.Mapping
}

// Source describes where a legacy origin lives and how to extract it.
type Source struct {
	Kind    SourceKind
	Path    string
	extract func(data []byte) (*settings.Mapping, error)
}

// Sources returns the known sources in precedence order, lowest first.
func Sources(env environment.Environment) []Source {
	return []Source{
		{Kind: MainIni, Path: env.MainIniPath(), extract: settingsfile.Parse},
		{Kind: LegacyIni, Path: env.LegacyIniPath(), extract: settingsfile.Parse},
		{Kind: LegacyEnvFile, Path: env.LegacyEnvFilePath(), extract: extractEnvFile},
		{Kind: LegacyDBConfig, Path: env.LegacyDBConfigPath(), extract: extractDBConfig},
	}
}

// Read extracts every existing source under env in precedence order.
// Missing sources are skipped. Unreadable ones yield an empty Partial and
// malformed ones keep whatever fields could be read. Read never fails.
func Read(sys System, env environment.Environment, logger *zap.Logger) []Partial {
	if logger == nil {
		logger = zap.NewNop()
	}

	var partials []Partial
	for _, src := range Sources(env) {
		log := logger.With(zap.String("source", string(src.Kind)), zap.String("path", src.Path))

		data, err := sys.ReadFile(src.Path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Debug("legacy source absent")
				continue
			}
			log.Debug("legacy source unreadable, treating as empty", zap.Error(err))
			partials = append(partials, Partial{Kind: src.Kind, Path: src.Path, Values: settings.New()})
			continue
		}

		values, err := src.extract(data)
		if err != nil {
			log.Debug("legacy source malformed, keeping readable fields", zap.Error(err))
		}
		if values == nil {
			values = settings.New()
		}
		log.Debug("legacy source read", zap.Int("fields", values.Len()))
		partials = append(partials, Partial{Kind: src.Kind, Path: src.Path, Values: values})
	}
	return partials
}

// extractEnvFile returns the trimmed file content as FieldValue. Blank files
// contribute nothing.
func extractEnvFile(data []byte) (*settings.Mapping, error) {
	m := settings.New()
	if value := strings.TrimSpace(string(data)); value != "" {
		m.Set(FieldValue, value)
	}
	return m, nil
}

// extractDBConfig exposes the user and password fields of the PHP config.
func extractDBConfig(data []byte) (*settings.Mapping, error) {
	return dbConfigFields(ParseDBConfig(data)), nil
}

func dbConfigFields(cfg DBConfig) *settings.Mapping {
	m := settings.New()
	if password, ok := cfg.Password(); ok {
		m.Set(FieldPassword, password)
	}
	if user, ok := cfg.User(); ok {
		m.Set(FieldUser, user)
	}
	return m
}
