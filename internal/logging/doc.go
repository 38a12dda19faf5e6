// Package logging provides logging utilities for teamforge-ctl.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("analyzing project", "path", path)
//	logging.Warn("manifest parse failed", "manifest", name, "error", err)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Analyzing %s...", path)
//	logging.UserSuccess("Config written to %s", configPath)
//	logging.UserWarning("Skipping malformed manifest %s", name)
//	logging.UserError("Analysis failed: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
