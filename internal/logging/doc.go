// Package logging provides structured logging for menuconfig.
//
// This package wraps a zap logger with convenience functions for the events
// an editing session produces: schema loading, saves, disk scans and state
// transitions of the editor loop.
//
// # Output
//
// The editor owns the terminal, so nothing is ever logged to stdout or
// stderr. When enabled, entries go to a size-rotated log file managed by
// lumberjack:
//
//	2026-10-18T10:30:45.123+0200  INFO  Schema loaded  {"path": "menu.conf", "loaded": 12}
//
// # Configuration
//
// Logging is silent unless a level is configured, either through
// MENUCONFIG_LOG_LEVEL or the log_level preference:
//
//	if err := logging.Initialize(prefs.LogLevel, prefs.LogFile); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// Valid levels are "debug", "info", "warn" and "error".
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The signal watcher in
// package terminal may log while the editor loop is blocked on a read.
package logging
