package logger

import "go.uber.org/zap/zapcore"

// -v counts. They select output categories (see output.go) as well as log level.
const (
	VerbosityUser  = 0 // results and errors
	VerbosityInfo  = 1 // per-artifact status
	VerbosityDebug = 2 // discovery and config details
	VerbosityTrace = 3 // per-message and per-alias decisions
)

// VerbosityToLevel maps a -v count to the minimum enabled zap level.
// Warnings are always shown; -v adds info and -vv debug.
func VerbosityToLevel(verbosity int) zapcore.Level {
	if verbosity >= VerbosityDebug {
		return zapcore.DebugLevel
	}
	if verbosity == VerbosityInfo {
		return zapcore.InfoLevel
	}
	return zapcore.WarnLevel
}
