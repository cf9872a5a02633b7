// Package logger provides a minimal process-wide leveled logger that
// routes messages to a pluggable sink and can terminate the process
// on error-level logs.
//
// # Features
//
//   - Global package-level functions (no dependency injection needed)
//   - Pluggable Sink interface with a built-in command-line sink
//     (Info to stdout, everything else to stderr)
//   - Per-level suppression via independent flag bits
//   - Optional exit-on-error policy (exit status 1 after dispatch)
//   - Fixed 4096-byte formatting buffer with silent truncation
//   - Compile-time removable debug logging via the logdebug build tag
//   - Generic error pass-through helper for (value, error) returns
//   - Level filtering via the LOG_DISABLE environment variable
//
// # Usage
//
// Install the command-line defaults once at startup:
//
//	logger.CommandLine()
//
// or install a custom sink and flags wholesale:
//
//	logger.Install(mySink, logger.SuppressDebug)
//
// Then log:
//
//	logger.Infof("listening on %s", addr)
//	logger.Warnf("retrying in %v", delay)
//	logger.Errorf("giving up: %v", err)           // may exit(1)
//	logger.Log(logger.InfoLevel, preRendered)     // raw bytes, as given
//
// Error pass-through keeps call sites to one line:
//
//	f, err := logger.PassError(os.Open(path))
//
// # Threading Contract
//
// The logger state is a single unsynchronized global slot. All
// configuration calls (Install, SetExitOnError, SetLevelEnabled,
// CommandLine, SetSystemInfo) must happen on one goroutine before
// logging starts on others, or be externally synchronized by the
// application. Once configuration has ceased, concurrent logging from
// any number of goroutines is safe as far as this package is
// concerned; serializing output is the sink's job. This precondition
// is not checked at runtime.
//
// # Fire and Forget
//
// Logging calls never return errors. Suppressed messages are dropped
// before formatting, oversized messages are truncated to 4096 bytes
// at the raw byte boundary (a multibyte character may be split), and
// sink write failures are swallowed. The only externally visible
// failure behavior is process termination under exit-on-error.
//
// # Level Filtering
//
// CommandLine honors a comma-separated list of level names to
// suppress:
//
//	LOG_DISABLE="DEBUG,WARNING" ./myapp
//
// This package is lightweight and has no external dependencies.
package logger
