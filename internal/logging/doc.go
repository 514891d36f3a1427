// Package logging provides structured logging for InfoHub.
//
// This package wraps zap logger with convenience functions for common logging
// patterns used throughout the application, plus a few domain helpers for
// navigation and form submission events.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Field edits, validation passes
//   - Info: Navigation, successful submissions
//   - Warn: Rejected submissions, handoff redirects
//   - Error: Failed submission callbacks
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Registration completed",
//	    zap.String("user_id", user.ID),
//	    zap.String("email", user.Email),
//	)
//
// Password fields are never logged. FieldValue replaces them with their length:
//
//	logging.Debug("Field changed", logging.FieldValue("senha", value))
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.Initialize(level); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// When no level is passed and INFOHUB_LOG_LEVEL is unset, logging is silent so
// the terminal screens render cleanly. INFOHUB_LOG_FILE sends output to a file
// instead of stderr, which is the useful setting while the interactive UI runs.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
