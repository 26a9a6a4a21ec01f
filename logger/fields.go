package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across wxtgen.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent = "component"

	// Inputs
	FieldRoot       = "root"
	FieldSrcDir     = "src_dir"
	FieldOutDir     = "out_dir"
	FieldEntrypoint = "entrypoint"
	FieldKind       = "kind"
	FieldLocale     = "locale"
	FieldAlias      = "alias"
	FieldBrowser    = "browser"

	// Outputs
	FieldArtifact = "artifact"
	FieldFile     = "file"
	FieldChanged  = "changed"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"

	// Counts and sizes
	FieldCount = "count"
	FieldSize  = "size"
)

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	type Writer struct {
//	    logger *zap.SugaredLogger
//	}
//
//	func NewWriter() *Writer {
//	    return &Writer{logger: logger.ComponentLogger("artifact.writer")}
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// OrComponent returns l when set, otherwise a component logger named name.
func OrComponent(l *zap.SugaredLogger, name string) *zap.SugaredLogger {
	if l != nil {
		return l
	}
	return ComponentLogger(name)
}
