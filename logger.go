package plotive

import (
	"log/slog"

	"github.com/plotive/plotive/internal/logging"
)

// SetLogger configures the logger for plotive and all its sub-packages.
// By default, plotive produces no log output.
//
// SetLogger is safe for concurrent use: it stores the new logger
// atomically. Pass nil to restore the default silent behavior.
//
// Log levels used:
//   - [slog.LevelDebug]: internal diagnostics (font fallback, layout shrink)
//   - [slog.LevelWarn]: non-fatal issues (system font discovery failed)
//
// Example:
//
//	plotive.SetLogger(slog.Default())
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the currently configured logger. It never returns
// nil; with no logger set it returns a silent logger.
func Logger() *slog.Logger {
	return logging.Logger()
}
