package messages

// Config messages for tool configuration loading and validation.
const (
	// ConfigMissingFileFmt formats missing config file errors.
	ConfigMissingFileFmt     = "missing config file %s: %w"
	ConfigInvalidConfigFmt   = "invalid config %s: %w"
	ConfigInvalidLogLevelFmt = "%s: log_level must be one of debug, info, warn, error (got %q)"
	ConfigExpandBaseDirFmt   = "%s: expand base_dir %q: %w"
)
