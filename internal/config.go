package internal

import (
	"strconv"
	"sync/atomic"
)

// Runtime logging modes, seeded from ldflags and updated after flag parsing.
var (
	quietMode   atomic.Bool
	debugMode   atomic.Bool
	verboseMode atomic.Bool
)

func init() {
	quietMode.Store(parseFlag(rawQuiet))
	debugMode.Store(parseFlag(rawDebug))
	verboseMode.Store(parseFlag(rawVerbose))
}

// Parses a raw ldflags boolean. Unset or malformed values read as false.
func parseFlag(raw string) bool {
	v, err := strconv.ParseBool(raw)
	return err == nil && v
}

// Enables or disables quiet mode.
func SetQuiet(enabled bool) {
	quietMode.Store(enabled)
}

// Returns true if quiet mode is enabled.
func IsQuiet() bool {
	return quietMode.Load()
}

// Enables or disables debug mode.
func SetDebug(enabled bool) {
	debugMode.Store(enabled)
}

// Returns true if debug mode is enabled.
func IsDebug() bool {
	return debugMode.Load()
}

// Enables or disables verbose logging.
func SetVerbose(enabled bool) {
	verboseMode.Store(enabled)
}

// Returns true if verbose logging is enabled.
func IsVerbose() bool {
	return verboseMode.Load()
}
