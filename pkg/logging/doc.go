// Package logging provides structured logging utilities for sysmind components.
//
// # Overview
//
// This package wraps the standard library slog package with sysmind defaults
// and conventions for consistent logging across the CLI, the daemon, the
// snapshot collectors and the tunable store. It supports environment-based
// log level configuration, module/version context injection, and automatic
// source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Unsupported platforms and other degraded-but-normal outcomes
//   - ERROR: Provider failures and persist-sequence step failures
//
// # Usage
//
// Setting the default logger:
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("sysmind", "v1.0.0")
//	    slog.Info("collecting snapshot")
//	}
//
// Creating a logger handle for a single component:
//
//	logger := logging.NewStructuredLogger("sysctl", "v1.0.0", "debug")
//	store := sysctl.New(ctx, sysctl.WithLogger(logger))
//
// Silencing a component:
//
//	store := sysctl.New(ctx, sysctl.WithLogger(logging.Discard()))
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity when no explicit
// level is passed:
//
//	LOG_LEVEL=debug sysmind snapshot
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "ERROR",
//	    "msg": "provider failed",
//	    "module": "sysmind",
//	    "version": "v1.0.0",
//	    "domain": "pci-devices",
//	    "error": "exec: \"lspci\": executable file not found in $PATH"
//	}
package logging
