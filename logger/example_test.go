package logger_test

import (
	"os"

	"github.com/mordilloSan/go-minlog/logger"
)

// This example shows the command-line defaults: Info to stdout,
// everything else to stderr, exit-on-error enabled.
func ExampleCommandLine() {
	logger.CommandLine()
	logger.Infof("server started on port %d", 8080)
	logger.Warnf("config file missing, using defaults")
}

// This example installs a custom sink wholesale, with debug output
// suppressed and no exit policy.
func ExampleInstall() {
	sink := logger.SinkFunc(func(level logger.Level, msg []byte) {
		os.Stderr.Write(msg)
	})
	logger.Install(sink, logger.SuppressDebug)
	logger.Infof("custom sink active")
}

// This example toggles a single level at runtime.
func ExampleSetLevelEnabled() {
	logger.CommandLine()
	logger.SetLevelEnabled(logger.DebugLevel, false)
	logger.Debugf("dropped")
	logger.SetLevelEnabled(logger.DebugLevel, true)
	logger.Debugf("delivered (in logdebug builds)")
}

// This example wraps a two-value call so failures are logged without
// touching the control flow.
func ExamplePassError() {
	logger.CommandLine()
	logger.SetExitOnError(false)

	f, err := logger.PassError(os.Open("/etc/hosts"))
	if err != nil {
		return
	}
	defer f.Close()
}

// This example guards an expensive debug line so release builds never
// construct its arguments.
func ExampleDebugf() {
	logger.CommandLine()
	if logger.DebugEnabled {
		logger.Debugf("routing table: %v", os.Environ())
	}
}
