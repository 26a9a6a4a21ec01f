// Package errors provides error handling for wxtgen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints attached to errors
//
// Usage:
//
//	// Wrap with context
//	if err := loadLocale(path); err != nil {
//	    return errors.Wrapf(err, "failed to load locale %s", path)
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "set manifest.default_locale in wxt.toml")
//
//	// Check errors
//	if errors.Is(err, errors.ErrInvalidEntrypoint) {
//	    // report the entrypoint
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint      = crdb.WithHint
	WithHintf     = crdb.WithHintf
	WithDetail    = crdb.WithDetail
	WithDetailf   = crdb.WithDetailf
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
	FlattenHints  = crdb.FlattenHints
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for a generation pass.
// Wrap these with errors.Wrapf() to name the offending input while preserving the type.
var (
	// ErrInvalidEntrypoint indicates an entrypoint from which no public path can be derived
	ErrInvalidEntrypoint = New("invalid entrypoint")

	// ErrInvalidBuildContext indicates an unsupported manifest version, browser or command
	ErrInvalidBuildContext = New("invalid build context")

	// ErrInvalidLocale indicates a locale resource that is not a mapping of messages
	ErrInvalidLocale = New("invalid locale resource")

	// ErrNotFound indicates the requested file or resource does not exist
	ErrNotFound = New("not found")

	// ErrInvalidRequest indicates malformed caller input (flags, config values)
	ErrInvalidRequest = New("invalid request")

	// ErrStale indicates generated artifacts on disk differ from a fresh render
	ErrStale = New("generated files are out of date")
)

// IsNotFoundError checks if an error is or wraps ErrNotFound
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsStaleError checks if an error is or wraps ErrStale
func IsStaleError(err error) bool {
	return err != nil && Is(err, ErrStale)
}

// NewInvalidEntrypointError creates an invalid-entrypoint error with a formatted message
func NewInvalidEntrypointError(format string, args ...interface{}) error {
	return Wrapf(ErrInvalidEntrypoint, format, args...)
}

// NewInvalidRequestError creates an invalid-request error with a formatted message
func NewInvalidRequestError(format string, args ...interface{}) error {
	return Wrapf(ErrInvalidRequest, format, args...)
}
