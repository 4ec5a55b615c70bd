package messages

// System messages for filesystem and migration internals.
const (
	// FsutilCreateTempFmt formats temp file creation failures.
	FsutilCreateTempFmt = "create temp file for %s: %w"
	FsutilWriteTempFmt  = "write temp file for %s: %w"
	FsutilSyncTempFmt   = "sync temp file for %s: %w"
	FsutilCloseTempFmt  = "close temp file for %s: %w"
	FsutilChmodTempFmt  = "chmod temp file for %s: %w"
	FsutilRenameTempFmt = "replace %s: %w"

	EnvironmentBaseDirRequired = "base directory is required"

	MigrateSystemRequired = "migrate system is required"
	MigrateWriteFailedFmt = "write settings file %s: %w"
	TextRandomSourceFmt   = "read random source: %w"

	SettingsMalformed      = "malformed settings file"
	SettingsLineFmt        = "line %d: %w"
	SettingsUnreadableLine = "unreadable line"
)

// Prompt messages for interactive confirmation.
const (
	PromptRequiresTerminal = "interactive mode requires an interactive terminal"
	PromptCancelled        = "prompt cancelled"
	PromptAffirmative      = "Write"
	PromptNegative         = "Cancel"
)

// Filelock messages for cross-process migration locking.
const (
	FilelockOpenFmt    = "open lock file %s: %w"
	FilelockLockFmt    = "lock %s: %w"
	FilelockTimeoutFmt = "timed out after %s waiting for another migration to finish"
)
