package doctor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/azuracast/envmigrate/internal/environment"
	"github.com/azuracast/envmigrate/internal/legacy"
	"github.com/azuracast/envmigrate/internal/messages"
	"github.com/azuracast/envmigrate/internal/migrate"
	"github.com/azuracast/envmigrate/internal/settingsfile"
)

var (
	statFunc     = os.Stat
	readFileFunc = os.ReadFile
)

// Run executes every check against env. Source and settings checks are
// skipped when the base directory itself is unusable.
func Run(env environment.Environment, rules migrate.Rules) []Result {
	results := CheckBaseDir(env)
	if HasFailures(results) {
		return results
	}
	results = append(results, CheckSources(env)...)
	results = append(results, CheckSettings(env, rules)...)
	return results
}

// CheckBaseDir verifies that the base directory exists and is a directory.
func CheckBaseDir(env environment.Environment) []Result {
	dir := env.BaseDirectory()
	info, err := statFunc(dir)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameBaseDir,
			Message:        fmt.Sprintf(messages.DoctorBaseDirMissingFmt, dir, err),
			Recommendation: messages.DoctorBaseDirRecommend,
		}}
	}
	if !info.IsDir() {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameBaseDir,
			Message:        fmt.Sprintf(messages.DoctorBaseDirNotDirFmt, dir),
			Recommendation: messages.DoctorBaseDirRecommend,
		}}
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameBaseDir,
		Message:   fmt.Sprintf(messages.DoctorBaseDirExistsFmt, dir),
	}}
}

// CheckSources reports the main settings file and any legacy file still on disk.
func CheckSources(env environment.Environment) []Result {
	var results []Result
	pending := 0
	for _, source := range legacy.Sources(env) {
		rel := relativeTo(env, source.Path)
		_, err := statFunc(source.Path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			results = append(results, Result{
				Status:    StatusWarn,
				CheckName: messages.DoctorCheckNameSources,
				Message:   fmt.Sprintf(messages.DoctorSourceUnreadableFmt, rel, err),
			})
			continue
		}
		exists := err == nil

		switch {
		case source.Kind == legacy.MainIni && exists:
			results = append(results, Result{
				Status:    StatusOK,
				CheckName: messages.DoctorCheckNameSources,
				Message:   fmt.Sprintf(messages.DoctorMainIniPresentFmt, rel),
			})
		case source.Kind == legacy.MainIni:
			results = append(results, Result{
				Status:         StatusWarn,
				CheckName:      messages.DoctorCheckNameSources,
				Message:        fmt.Sprintf(messages.DoctorMainIniMissingFmt, rel),
				Recommendation: messages.DoctorRunMigrateRecommend,
			})
		case exists:
			pending++
			results = append(results, Result{
				Status:         StatusWarn,
				CheckName:      messages.DoctorCheckNameSources,
				Message:        fmt.Sprintf(messages.DoctorLegacyPendingFmt, rel),
				Recommendation: messages.DoctorRunMigrateRecommend,
			})
		}
	}
	if pending == 0 {
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameSources,
			Message:   messages.DoctorNoLegacyFiles,
		})
	}
	return results
}

// CheckSettings validates env.ini against rules: every defaulted key is set
// and not a sentinel, and no deprecated key remains. A missing env.ini is
// reported by CheckSources and yields no results here.
func CheckSettings(env environment.Environment, rules migrate.Rules) []Result {
	path := env.MainIniPath()
	rel := relativeTo(env, path)
	data, err := readFileFunc(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return []Result{{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNameSettings,
			Message:   fmt.Sprintf(messages.DoctorSettingsUnreadableFmt, rel, err),
		}}
	}
	var results []Result
	values, err := settingsfile.Parse(data)
	if err != nil {
		results = append(results, Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameSettings,
			Message:        fmt.Sprintf(messages.DoctorSettingsInvalidFmt, rel, err),
			Recommendation: messages.DoctorSettingsParseRecommend,
		})
	}

	warn := func(format string, args ...any) {
		results = append(results, Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameSettings,
			Message:        fmt.Sprintf(format, args...),
			Recommendation: messages.DoctorSettingsFixRecommend,
		})
	}
	for _, def := range rules.Defaults {
		value := values.Value(def.Key)
		if value == "" {
			warn(messages.DoctorSettingsMissingKeyFmt, def.Key)
			continue
		}
		for _, sentinel := range def.Sentinels {
			if value == sentinel && value != def.Value {
				warn(messages.DoctorSettingsSentinelFmt, def.Key, value)
				break
			}
		}
	}
	for _, key := range rules.DeprecatedKeys() {
		if values.Has(key) {
			warn(messages.DoctorSettingsDeprecatedFmt, key)
		}
	}
	if len(results) == 0 {
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameSettings,
			Message:   fmt.Sprintf(messages.DoctorSettingsNormalizedFmt, rel),
		})
	}
	return results
}

func relativeTo(env environment.Environment, path string) string {
	rel, err := filepath.Rel(env.BaseDirectory(), path)
	if err != nil {
		return path
	}
	return rel
}
