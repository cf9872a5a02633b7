//go:build logdebug

package logger

// DebugEnabled reports whether Debugf is compiled in. Call sites with
// expensive arguments guard on it so the arguments are never built in
// release binaries:
//
//	if logger.DebugEnabled {
//	    logger.Debugf("state: %v", expensiveDump())
//	}
const DebugEnabled = true

// Debugf logs a formatted message at Debug level. Only present in
// builds with the logdebug tag; see DebugEnabled.
func Debugf(format string, v ...any) {
	logf(DebugLevel, format, v...)
}
