package messages

// Doctor messages for the doctor command and health checks.
const (
	DoctorUse   = "doctor"
	DoctorShort = "Report whether the configuration still needs migrating"

	DoctorHealthCheckFmt = "Checking AzuraCast configuration in %s...\n"
	DoctorFailureSummary = "Some checks failed or triggered warnings. Please address the items above."
	DoctorSuccessSummary = "All checks passed. Configuration is fully migrated."

	DoctorStatusOKLabel        = "[OK]  "
	DoctorStatusWarnLabel      = "[WARN]"
	DoctorStatusFailLabel      = "[FAIL]"
	DoctorResultLineFmt        = "%s %-10s %s\n"
	DoctorRecommendationPrefix = "       > "

	DoctorCheckNameBaseDir  = "BaseDir"
	DoctorCheckNameSources  = "Sources"
	DoctorCheckNameSettings = "Settings"

	DoctorBaseDirExistsFmt       = "Base directory %s exists"
	DoctorBaseDirMissingFmt      = "Base directory %s is missing: %v"
	DoctorBaseDirNotDirFmt       = "Base directory %s is not a directory"
	DoctorBaseDirRecommend       = "Pass --base-dir or set AZURACAST_BASE_DIR to the AzuraCast installation."
	DoctorMainIniPresentFmt      = "%s present"
	DoctorMainIniMissingFmt      = "%s not found"
	DoctorLegacyPendingFmt       = "Legacy file %s has not been migrated"
	DoctorNoLegacyFiles          = "No legacy files remain"
	DoctorSourceUnreadableFmt    = "Cannot inspect %s: %v"
	DoctorRunMigrateRecommend    = "Run `envmigrate migrate` to merge it into env.ini."
	DoctorSettingsUnreadableFmt  = "Cannot read %s: %v"
	DoctorSettingsInvalidFmt     = "Skipped unreadable lines in %s: %v"
	DoctorSettingsMissingKeyFmt  = "%s is missing or empty"
	DoctorSettingsSentinelFmt    = "%s still uses the legacy value %q"
	DoctorSettingsDeprecatedFmt  = "Deprecated key %s is still present"
	DoctorSettingsNormalizedFmt  = "%s is normalized"
	DoctorSettingsFixRecommend   = "Run `envmigrate migrate` to normalize env.ini."
	DoctorSettingsParseRecommend = "Fix those lines or restore env.ini from a backup."
)
