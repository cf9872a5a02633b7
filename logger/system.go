package logger

// SystemInfo supplies the current OS error code and its description
// for Perrorf. The embedding application installs one via
// SetSystemInfo; this package never inspects the OS itself.
type SystemInfo interface {
	// Errno returns the current OS error code.
	Errno() int
	// ErrnoString returns the human-readable description of Errno.
	ErrnoString() string
}

// noSystemInfo is the placeholder used until SetSystemInfo is called.
type noSystemInfo struct{}

func (noSystemInfo) Errno() int          { return 0 }
func (noSystemInfo) ErrnoString() string { return "unknown error" }

var sysinfo SystemInfo = noSystemInfo{}

// SetSystemInfo installs the OS error accessors used by Perrorf.
// A nil info restores the placeholder. Configuration call; same
// single-goroutine contract as Install.
func SetSystemInfo(info SystemInfo) {
	if info == nil {
		info = noSystemInfo{}
	}
	sysinfo = info
}

// Perrorf logs at Error level, rendering the template followed by the
// current OS error:
//
//	<rendered format> failed with <code>: <description>
//
// It goes through the normal dispatch pipeline, so exit-on-error
// applies. With Error-level suppression set, nothing is rendered and
// the system accessors are not called.
func Perrorf(format string, v ...any) {
	if std.flags&SuppressError != 0 {
		return
	}
	logf(ErrorLevel, format+" failed with %d: %s",
		append(v, sysinfo.Errno(), sysinfo.ErrnoString())...)
}
