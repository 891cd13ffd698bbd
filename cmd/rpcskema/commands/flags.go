package commands

// Flag and configuration keys. Every key can also be set in the config file or
// through an RPCSKEMA_ prefixed environment variable (dashes become
// underscores).
const (
	flagConfig        = "config"
	flagVerbose       = "verbose"
	flagMaxDepth      = "max-depth"
	flagMaxBytes      = "max-bytes"
	flagDuplicateKeys = "duplicate-keys"
	flagFailFast      = "fail-fast"
	flagIndent        = "indent"
)
