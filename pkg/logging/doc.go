// Package logging provides structured logging utilities for sigcli binaries.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
// so every command tree built from a registry logs the same way. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: compile-phase detail (one record per generated command) with source location
//   - INFO: general informational messages (default)
//   - WARN/WARNING: potentially problematic situations
//   - ERROR: failures requiring attention
//
// # Usage
//
// Installing the default logger (the root --log-level flag does this):
//
//	logging.SetDefaultStructuredLoggerWithLevel("sigdemo", "v0.1.0", "debug")
//	slog.Debug("compiling command tree", "root", "foo")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable backs --log-level:
//
//	LOG_LEVEL=debug sigdemo foo typed 5
//
// # Output Format
//
// All logs are written to stderr in JSON format, keeping stdout free for the
// output of the invoked callable:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "invoking",
//	    "module": "sigdemo",
//	    "version": "v0.1.0",
//	    "command": "foo typed"
//	}
package logging
