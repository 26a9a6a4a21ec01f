// Package logger holds the process-wide zap logger.
//
// Commands call Initialize once flags are parsed. Until then Logger is a
// no-op, so library packages can log unconditionally.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ThemeEnv selects the console colour theme
const ThemeEnv = "WXTGEN_LOG_THEME"

var (
	// Logger is the global logger
	Logger = zap.NewNop().Sugar()

	// JSONOutput is true once Initialize switched to structured JSON logs
	JSONOutput bool
)

// Initialize replaces the global logger.
// Logs always go to stderr; stdout carries command results.
func Initialize(jsonOutput bool, verbosity int) error {
	if theme := os.Getenv(ThemeEnv); theme != "" {
		SetTheme(theme)
	}

	level := zap.NewAtomicLevelAt(VerbosityToLevel(verbosity))

	if jsonOutput {
		cfg := zap.NewProductionConfig()
		cfg.Level = level
		cfg.OutputPaths = []string{"stderr"}
		cfg.ErrorOutputPaths = []string{"stderr"}
		built, err := cfg.Build()
		if err != nil {
			return err
		}
		Logger, JSONOutput = built.Sugar(), true
		return nil
	}

	core := zapcore.NewCore(newMinimalEncoder(), zapcore.Lock(os.Stderr), level)
	Logger, JSONOutput = zap.New(core).Sugar(), false
	return nil
}

// Cleanup flushes buffered entries. Sync errors on terminals are ignored.
func Cleanup() {
	_ = Logger.Sync()
}
