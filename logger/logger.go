package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Level defines log severity. Levels are ordered from most to least
// severe so embedders can compare them directly.
type Level int

const (
	// ErrorLevel marks failures; subject to the exit-on-error policy.
	ErrorLevel Level = iota
	// WarnLevel marks conditions worth attention but not failures.
	WarnLevel
	// InfoLevel marks normal operational messages.
	InfoLevel
	// DebugLevel marks diagnostic messages; see Debugf and DebugEnabled.
	DebugLevel
)

// String returns the display name of the level.
func (l Level) String() string {
	switch l {
	case ErrorLevel:
		return "ERROR"
	case WarnLevel:
		return "WARNING"
	case InfoLevel:
		return "INFO"
	case DebugLevel:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// Flag is a bitmask of independent logger behavior switches.
// Any combination of bits is valid; the zero value suppresses nothing
// and never exits.
type Flag uint32

const (
	// SuppressError drops all Error-level messages.
	SuppressError Flag = 1 << iota
	// SuppressWarn drops all Warn-level messages.
	SuppressWarn
	// SuppressInfo drops all Info-level messages.
	SuppressInfo
	// SuppressDebug drops all Debug-level messages.
	SuppressDebug
	// ExitOnError terminates the process with status 1 after an
	// Error-level message has been handed to the sink.
	ExitOnError
)

// suppressFlag returns the suppression bit for the level. Levels
// outside the four defined ones have no bit and are never suppressed.
func (l Level) suppressFlag() Flag {
	switch l {
	case ErrorLevel:
		return SuppressError
	case WarnLevel:
		return SuppressWarn
	case InfoLevel:
		return SuppressInfo
	case DebugLevel:
		return SuppressDebug
	default:
		return 0
	}
}

// Sink receives every dispatched message. Implementations must not
// assume msg remains valid after Write returns; copy it if needed.
// Write has no way to report a failure and the dispatch path would
// ignore one anyway, so sinks swallow their own errors.
type Sink interface {
	Write(level Level, msg []byte)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(level Level, msg []byte)

// Write calls f(level, msg).
func (f SinkFunc) Write(level Level, msg []byte) { f(level, msg) }

// state is the process-wide logger slot: the current sink plus the
// behavior flags, read as one snapshot on every log call.
type state struct {
	sink  Sink
	flags Flag
}

// global state
var (
	// std holds the installed sink and flags. It starts as a no-op
	// sink with zero flags and is intentionally unsynchronized: all
	// mutations (Install, SetExitOnError, SetLevelEnabled,
	// CommandLine) must happen on one goroutine before concurrent
	// logging begins. See the package documentation.
	std = state{sink: SinkFunc(func(Level, []byte) {})}

	// osExit is swapped out by tests that exercise the exit-on-error
	// path in-process.
	osExit = os.Exit
)

// Dependency injection points for testing outputs.
var (
	outStdout io.Writer = os.Stdout
	outStderr io.Writer = os.Stderr
)

// Install replaces the sink and flags wholesale. A nil sink installs
// a no-op sink. Install always succeeds; like every configuration
// call it must not race with logging on other goroutines.
func Install(sink Sink, flags Flag) {
	if sink == nil {
		sink = SinkFunc(func(Level, []byte) {})
	}
	std = state{sink: sink, flags: flags}
}

// SetExitOnError sets or clears the exit-on-error bit. It mutates the
// bit and nothing else; no message is dispatched.
func SetExitOnError(enabled bool) {
	if enabled {
		std.flags |= ExitOnError
	} else {
		std.flags &^= ExitOnError
	}
}

// SetLevelEnabled enables (clears the suppression bit of) or disables
// (sets the bit of) a single level. Levels without a suppression bit
// are unaffected.
func SetLevelEnabled(level Level, enabled bool) {
	flag := level.suppressFlag()
	if enabled {
		std.flags &^= flag
	} else {
		std.flags |= flag
	}
}

// CommandLine installs the built-in console sink: Info-level messages
// go to standard output, everything else to standard error, and write
// failures are ignored. Exit-on-error starts enabled and no level is
// suppressed, except levels named in the LOG_DISABLE environment
// variable (comma-separated, e.g. LOG_DISABLE="DEBUG,WARNING").
func CommandLine() {
	flags := ExitOnError
	if env := os.Getenv("LOG_DISABLE"); env != "" {
		flags |= parseDisable(env)
	}
	Install(SinkFunc(cmdlineWrite), flags)
}

// parseDisable parses a comma-separated list of level names into the
// matching suppression bits. Unknown names are ignored.
func parseDisable(s string) Flag {
	var flags Flag
	for _, p := range strings.Split(s, ",") {
		switch strings.ToUpper(strings.TrimSpace(p)) {
		case "ERROR":
			flags |= SuppressError
		case "WARN", "WARNING":
			flags |= SuppressWarn
		case "INFO":
			flags |= SuppressInfo
		case "DEBUG":
			flags |= SuppressDebug
		}
	}
	return flags
}

func cmdlineWrite(level Level, msg []byte) {
	if level == InfoLevel {
		_, _ = outStdout.Write(msg)
	} else {
		_, _ = outStderr.Write(msg)
	}
}

// scratchSize is the fixed capacity of the per-call formatting buffer.
const scratchSize = 4096

// scratch renders one formatted message. Output past capacity is
// silently dropped at the raw byte boundary: the longest prefix that
// fits is kept, even if that splits a multibyte character.
type scratch struct {
	buf [scratchSize]byte
	n   int
}

// Write reports the full length so fmt keeps rendering; the overflow
// simply never lands in the buffer.
func (b *scratch) Write(p []byte) (int, error) {
	c := copy(b.buf[b.n:], p)
	b.n += c
	return len(p), nil
}

func (b *scratch) bytes() []byte { return b.buf[:b.n] }

var newline = []byte{'\n'}

// Log dispatches pre-rendered bytes at the given level. The bytes are
// handed to the sink exactly as given (no newline is appended). If the
// level's suppression bit is set the call returns without touching the
// sink. Log never fails; after the sink call it applies the
// exit-on-error policy.
func Log(level Level, msg []byte) {
	s := std
	if s.flags&level.suppressFlag() != 0 {
		return
	}
	s.sink.Write(level, msg)
	if level == ErrorLevel && s.flags&ExitOnError != 0 {
		osExit(1)
	}
}

// logf renders format+args into a call-local scratch buffer, appends
// a trailing newline, and dispatches the result. Suppressed levels
// return before any formatting work.
func logf(level Level, format string, v ...any) {
	s := std
	if s.flags&level.suppressFlag() != 0 {
		return
	}
	var b scratch
	fmt.Fprintf(&b, format, v...)
	b.Write(newline)
	s.sink.Write(level, b.bytes())
	if level == ErrorLevel && s.flags&ExitOnError != 0 {
		osExit(1)
	}
}

// Errorf logs a formatted message at Error level. With the
// exit-on-error bit set the process terminates with status 1 once the
// message has reached the sink.
func Errorf(format string, v ...any) {
	logf(ErrorLevel, format, v...)
}

// Warnf logs a formatted message at Warn level.
func Warnf(format string, v ...any) {
	logf(WarnLevel, format, v...)
}

// Infof logs a formatted message at Info level.
func Infof(format string, v ...any) {
	logf(InfoLevel, format, v...)
}
