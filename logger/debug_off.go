//go:build !logdebug

package logger

// DebugEnabled reports whether Debugf is compiled in. False in this
// build: Debugf is an empty function the compiler inlines away, and
// call sites guard argument construction with DebugEnabled.
const DebugEnabled = false

// Debugf is a no-op without the logdebug build tag.
func Debugf(string, ...any) {}
