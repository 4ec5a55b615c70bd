package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "envmigrate"
	// RootShort is the short description for the root command.
	RootShort       = "AzuraCast settings migration and text utilities"
	RootVersionFlag = "Print version and exit"
	RootFlagVerbose = "Enable debug logging on stderr"
	RootFlagConfig  = "Path to an envmigrate.toml tool config file"

	RootLoggerInitFailedFmt = "failed to initialize logger: %w"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// MigrateUse is the migrate command name.
	MigrateUse   = "migrate"
	MigrateShort = "Migrate legacy configuration files into env.ini"
	MigrateLong  = `Reads env.ini, app/env.ini, app/.env and app/config/db.conf.php from the base
directory, merges them into a single canonical env.ini, and removes the legacy files.

Safe to re-run: once the legacy files are gone, only env.ini is re-normalized.`

	MigrateFlagBaseDir      = "Application base directory (defaults to $AZURACAST_BASE_DIR, then the config file, then the working directory)"
	MigrateFlagDryRun       = "Show the resulting env.ini as a diff without writing or deleting anything"
	MigrateFlagEscapeQuotes = "Escape embedded double quotes in values instead of writing them verbatim"
	MigrateFlagInteractive  = "Preview the result and ask for confirmation before writing"

	// MigrateSuccess is the single completion message.
	MigrateSuccess           = "Configuration successfully written."
	MigrateDryRunHeaderFmt   = "Dry run: %s would be written as follows:\n"
	MigrateDryRunNoChanges   = "(no changes)"
	MigrateDryRunRemoveFmt   = "Would remove legacy file %s\n"
	MigrateChangeLineFmt     = "  - %s\n"
	MigrateChangesHeader     = "Applied changes:"
	MigrateResolveBaseDirFmt = "resolve base directory %q: %w"

	MigrateConfirmTitleFmt       = "Write %s?"
	MigrateConfirmDescriptionFmt = "%d legacy file(s) will be removed afterwards."
	MigrateCancelled             = "Migration cancelled. Nothing was written."

	// TextUse is the text command group name.
	TextUse   = "text"
	TextShort = "Text formatting utilities"

	TextTruncateUse      = "truncate TEXT"
	TextTruncateShort    = "Truncate text to a character limit, adding a pad"
	TextTruncateLimit    = "Maximum number of characters before padding"
	TextTruncatePad      = "String appended to truncated text"
	TextWrapUse          = "wrap [TEXT]"
	TextWrapShort        = "Word-wrap text (reads stdin when TEXT is omitted)"
	TextWrapWidth        = "Maximum line width in characters (defaults to the terminal width, else 75)"
	TextWrapBreak        = "Line break marker"
	TextWrapCut          = "Hard-split words longer than the width"
	TextWrapReadStdinFmt = "read stdin: %w"
	TextTruncateURLUse   = "truncate-url URL"
	TextTruncateURLShort = "Shorten a URL for display"
	TextTruncateURLLen   = "Maximum number of characters before padding"
	TextPasswordUse      = "password"
	TextPasswordShort    = "Generate a random password"
	TextPasswordLength   = "Password length"
)
