// Package migrate merges legacy configuration sources into the canonical
// settings file.
//
// The pipeline reads every known source in precedence order, folds them with
// a declarative rule table, renames deprecated keys, fills defaults, writes
// env.ini and finally removes the legacy files. Re-running after a successful
// migration only re-normalizes env.ini.
package migrate

import (
	"errors"
	"fmt"
	"io/fs"

	"go.uber.org/zap"

	"github.com/azuracast/envmigrate/internal/environment"
	"github.com/azuracast/envmigrate/internal/legacy"
	"github.com/azuracast/envmigrate/internal/messages"
	"github.com/azuracast/envmigrate/internal/settings"
	"github.com/azuracast/envmigrate/internal/settingsfile"
)

const settingsFileMode fs.FileMode = 0o644

// Options controls a migration run.
type Options struct {
	// Rules overrides DefaultRules when non-nil.
	Rules *Rules
	// Render controls the canonical file format.
	Render settingsfile.Options
	// DryRun computes the result and diff without writing or removing files.
	DryRun bool
	// Logger receives debug output; nil disables logging.
	Logger *zap.Logger
}

// Result describes a completed migration.
type Result struct {
	// Path is the canonical settings file.
	Path string
	// Settings is the merged mapping that was (or would be) written.
	Settings *settings.Mapping
	// Content is the rendered file content.
	Content string
	// Sources lists the source kinds that were found, in precedence order.
	Sources []legacy.SourceKind
	// Changes lists renames, defaults and normalizations applied by the merge.
	Changes []Change
	// Removed lists legacy files that were removed, or would be on a dry run.
	Removed []string
	// Diff is the unified diff of env.ini; only populated on dry runs.
	Diff   string
	DryRun bool
}

// Run migrates the configuration under env. Read problems are absorbed as
// missing sources; a write failure is returned and leaves legacy files intact.
func Run(sys System, env environment.Environment, opts Options) (*Result, error) {
	if sys == nil {
		return nil, errors.New(messages.MigrateSystemRequired)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	rules := DefaultRules()
	if opts.Rules != nil {
		rules = *opts.Rules
	}

	partials := legacy.Read(sys, env, logger)
	merged, changes := Merge(partials, rules)
	for _, change := range changes {
		logger.Debug("merge decision",
			zap.String("kind", string(change.Kind)),
			zap.String("key", change.Key),
			zap.String("from", change.From))
	}

	result := &Result{
		Path:     env.MainIniPath(),
		Settings: merged,
		Content:  settingsfile.Render(merged, opts.Render),
		Changes:  changes,
		DryRun:   opts.DryRun,
	}
	for _, partial := range partials {
		result.Sources = append(result.Sources, partial.Kind)
	}

	if opts.DryRun {
		current := readCurrent(sys, result.Path, logger)
		result.Diff = Preview(result.Path, current, result.Content)
		for _, partial := range partials {
			if partial.Kind != legacy.MainIni {
				result.Removed = append(result.Removed, partial.Path)
			}
		}
		logger.Debug("dry run complete", zap.Int("keys", merged.Len()))
		return result, nil
	}

	if err := sys.WriteFileAtomic(result.Path, []byte(result.Content), settingsFileMode); err != nil {
		return nil, fmt.Errorf(messages.MigrateWriteFailedFmt, result.Path, err)
	}
	logger.Debug("settings written", zap.String("path", result.Path), zap.Int("keys", merged.Len()))

	result.Removed = removeLegacy(sys, env, logger)
	return result, nil
}

// removeLegacy deletes the legacy sources, ignoring failures, and returns the
// paths that were actually removed.
func removeLegacy(sys System, env environment.Environment, logger *zap.Logger) []string {
	var removed []string
	for _, path := range env.LegacyPaths() {
		if err := sys.Remove(path); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				logger.Debug("legacy source not removed", zap.String("path", path), zap.Error(err))
			}
			continue
		}
		removed = append(removed, path)
	}
	return removed
}

// readCurrent returns the existing settings file content, or "" when it cannot
// be read.
func readCurrent(sys System, path string, logger *zap.Logger) string {
	data, err := sys.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Debug("current settings unreadable", zap.String("path", path), zap.Error(err))
		}
		return ""
	}
	return string(data)
}
