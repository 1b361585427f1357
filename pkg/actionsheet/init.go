// Package actionsheet provides a modal action sheet component: a titled list of
// selectable actions with a single cancel action and an optional confirmation
// step before an action runs.
//
// The Controller owns the actions and the presentation state. Drawing is done by
// a Renderer (see the view and sdlsheet packages) and dismissal by a Host
// (see the presentation package).
//
//	sheet := actionsheet.NewController("Which Mac Pro would you like to buy?", "",
//	    actionsheet.WithRenderer(model),
//	    actionsheet.WithHost(host),
//	)
//	sheet.AddActions(
//	    actionsheet.NewAction("Buy Gen 1", actionsheet.StyleDefault, buyGen1),
//	    actionsheet.NewAction("Buy All", actionsheet.HasConfirmation("Buy All Gens", "That's a lot.", "Buy All"), buyAll),
//	)
//	sheet.WillAppear()
package actionsheet

import (
	"io"
	"log/slog"

	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet/internal"
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before the first sheet is created to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// SetLogWriter sends all log output to w instead of stdout and the log file.
// Call before the first sheet is created to take effect.
func SetLogWriter(w io.Writer) {
	internal.SetLogWriter(w)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// GetInternalLogger returns the logger the library itself writes to.
func GetInternalLogger() *slog.Logger {
	return internal.GetInternalLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetInternalLogLevel sets the minimum log level for library logging.
// Library logging defaults to errors only.
func SetInternalLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// CloseLogger flushes and closes the log file.
func CloseLogger() {
	internal.CloseLogger()
}
