// Package logging provides structured logging utilities for pop-support.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults so
// every component logs the same way: JSON records on stderr, a level taken from
// the --log-level flag or the LOG_LEVEL environment variable, and module/version
// attributes on every record. Stdout stays free for the single PATH line that the
// front-end parses.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: per-source start records and source locations
//   - INFO: run start, per-source outcomes, archive path (default)
//   - WARN/WARNING: unavailable sources and timeouts
//   - ERROR: staging and archival failures
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLoggerWithLevel("pop-support", version, "info")
//	    slog.Info("collecting", "sources", 20)
//	}
//
// Running with debug output:
//
//	LOG_LEVEL=debug pop-support generate-logs ~/
//
// # Output Format
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "source collected",
//	    "module": "pop-support",
//	    "version": "v1.0.0",
//	    "source_id": "lspci"
//	}
package logging
