package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagRoot    = "root"
	FlagNoColor = "no-color"
	FlagQuiet   = "quiet"
	FlagDebug   = "debug"

	// Flag descriptions
	DescRoot    = "Asset root directory (default: <executable dir>/linkyoo)"
	DescNoColor = "Disable colored output"
	DescQuiet   = "Suppress non-error output"
	DescDebug   = "Enable debug logging"
)
