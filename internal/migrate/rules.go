package migrate

import (
	"github.com/azuracast/envmigrate/internal/environment"
	"github.com/azuracast/envmigrate/internal/legacy"
)

// Mode selects how a rule writes its value into the merged mapping.
type Mode string

const (
	// ModeOverwrite replaces any earlier value (last write wins).
	ModeOverwrite Mode = "overwrite"
	// ModeIfUnset writes only when the target key is absent.
	ModeIfUnset Mode = "if_unset"
	// ModeOverrideWhenEquals replaces any earlier value, but only when the
	// source value equals Rule.Match.
	ModeOverrideWhenEquals Mode = "override_when_equals"
)

// Rule maps a field of one source kind onto a canonical key.
// An empty Field passes every field of the source through under its own name.
type Rule struct {
	Source legacy.SourceKind
	Field  string
	Target string
	Mode   Mode
	Match  string
}

// Rename moves a deprecated key to its canonical name.
type Rename struct {
	From string
	To   string
}

// Default fills Key when it is unset or empty. Sentinels are historical values
// that are replaced with Value even when set explicitly.
type Default struct {
	Key       string
	Value     string
	Sentinels []string
}

// Rules bundles the tables driving Merge.
type Rules struct {
	Sources  []Rule
	Renames  []Rename
	Defaults []Default
}

// rootUser is the administrative database user carried over from the PHP config.
const rootUser = "root"

// legacyDBHostSentinel was the shipped default host and must not survive migration.
const legacyDBHostSentinel = "azuracast"

// DefaultRules returns the migration tables for the application's settings.
func DefaultRules() Rules {
	return Rules{
		Sources: []Rule{
			{Source: legacy.MainIni, Mode: ModeOverwrite},
			{Source: legacy.LegacyIni, Mode: ModeOverwrite},
			{Source: legacy.LegacyEnvFile, Field: legacy.FieldValue, Target: environment.AppEnv, Mode: ModeIfUnset},
			{Source: legacy.LegacyDBConfig, Field: legacy.FieldPassword, Target: environment.DBPassword, Mode: ModeIfUnset},
			{Source: legacy.LegacyDBConfig, Field: legacy.FieldUser, Target: environment.DBUser, Mode: ModeOverrideWhenEquals, Match: rootUser},
		},
		Renames: []Rename{
			{From: "application_env", To: environment.AppEnv},
			{From: "db_host", To: environment.DBHost},
			{From: "db_port", To: environment.DBPort},
			{From: "db_name", To: environment.DBName},
			{From: "db_username", To: environment.DBUser},
			{From: "db_password", To: environment.DBPassword},
		},
		Defaults: []Default{
			{Key: environment.AppEnv, Value: "production"},
			{Key: environment.DBHost, Value: "localhost", Sentinels: []string{legacyDBHostSentinel}},
			{Key: environment.DBPort, Value: "3306"},
			{Key: environment.DBName, Value: "azuracast"},
			{Key: environment.DBUser, Value: "azuracast"},
		},
	}
}

// DeprecatedKeys lists every key the rename table removes.
func (r Rules) DeprecatedKeys() []string {
	keys := make([]string, 0, len(r.Renames))
	for _, rename := range r.Renames {
		keys = append(keys, rename.From)
	}
	return keys
}
