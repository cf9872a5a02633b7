package main

import (
	"errors"
	"os"

	"github.com/mordilloSan/go-minlog/logger"
)

// Example demonstrating go-minlog usage.
func main() {
	// Install the command-line defaults: Info to stdout, everything
	// else to stderr, exit-on-error enabled.
	// Try LOG_DISABLE="DEBUG,WARNING" ./go-minlog to suppress levels.
	logger.CommandLine()

	// Keep the demo alive through the error examples below.
	logger.SetExitOnError(false)

	// Formatted logging (classic)
	logger.Infof("hello %s", "world")
	logger.Warnf("disk usage at %d%%", 93)
	logger.Errorf("oops: %v", "something happened")

	// Debug logging only exists in builds with the logdebug tag; the
	// guard keeps release builds from constructing the arguments.
	if logger.DebugEnabled {
		logger.Debugf("built with logdebug, args: %v", os.Args)
	}

	// Raw bytes skip formatting entirely and are passed as given.
	logger.Log(logger.InfoLevel, []byte("pre-rendered line\n"))

	// Per-level suppression
	logger.SetLevelEnabled(logger.WarnLevel, false)
	logger.Warnf("this one is dropped")
	logger.SetLevelEnabled(logger.WarnLevel, true)
	logger.Warnf("warnings are back")

	// Transparent error pass-through: failures are logged at Error
	// level and the outcome flows through unchanged.
	if f, err := logger.PassError(os.Open("/no/such/file")); err == nil {
		f.Close()
	}
	_ = logger.CheckError(errors.New("standalone failure"))

	// Uncomment to see exit-on-error terminate the process with
	// status 1 after the message reaches stderr:
	// logger.SetExitOnError(true)
	// logger.Errorf("critical error: %v", "system failure")
}
