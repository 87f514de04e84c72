// Package logging provides structured logging for the sheet binary.
//
// This package wraps a global zap logger with convenience functions. Logging is
// silent unless a level is given, either on the command line or through the
// SHEET_LOG_LEVEL environment variable.
//
// # Log Levels
//
//   - Debug: editor state transitions, cell writes
//   - Info: user intents (import, export, share, new action, tab change)
//   - Warn: recoverable problems (clipboard unavailable, bad import file)
//   - Error: failures that end a command
//
// # Output
//
// The grid owns the terminal, so log output goes to a file (sheet.log in the
// working directory unless another path is configured):
//
//	if err := logging.Initialize("debug", "/tmp/sheet.log"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
//	logging.LogIntent("export", zap.String("path", path))
package logging
