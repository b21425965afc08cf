// Package ports defines the interfaces the file manager depends on: the
// console it talks through, the filesystem it operates on and the logger it
// reports diagnostics to.
package ports

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	// LevelDebug is for per-call filesystem details.
	LevelDebug LogLevel = iota
	// LevelInfo is for session-level events.
	LevelInfo
	// LevelWarn is for skipped entries and other recoverable problems.
	LevelWarn
	// LevelError is for operational failures.
	LevelError
	// LevelQuiet suppresses all log output.
	LevelQuiet
)

var levelNames = map[string]LogLevel{
	"debug": LevelDebug,
	"info":  LevelInfo,
	"warn":  LevelWarn,
	"error": LevelError,
	"quiet": LevelQuiet,
}

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	for name, level := range levelNames {
		if level == l {
			return name
		}
	}
	return "unknown"
}

// ParseLogLevel parses a string into a LogLevel, falling back to LevelWarn.
func ParseLogLevel(s string) LogLevel {
	if level, ok := levelNames[s]; ok {
		return level
	}
	return LevelWarn
}

// IsLogLevel reports whether s names a known level.
func IsLogLevel(s string) bool {
	_, ok := levelNames[s]
	return ok
}

// Logger abstracts diagnostic logging. It is separate from Console: log
// output never carries the interactive protocol.
type Logger interface {
	// Debug logs a debug message. msg is a translatable format key.
	Debug(msg string, args ...interface{})

	// Info logs an informational message.
	Info(msg string, args ...interface{})

	// Warn logs a warning message.
	Warn(msg string, args ...interface{})

	// Error logs an error message.
	Error(msg string, args ...interface{})

	// WithComponent returns a Logger that prefixes messages with component.
	WithComponent(component string) Logger
}
