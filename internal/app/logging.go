package app

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
)

// LogLevel is the severity of a log message.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// String returns the level name.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger writes leveled log lines tagged with a per-run session ID.
// The terminal owns stdout and stderr while the editor runs, so the
// logger writes to a file (or is discarded entirely).
type Logger struct {
	mu      sync.Mutex
	level   LogLevel
	output  io.Writer
	session string
}

// NewLogger creates a logger writing to output at the given level.
func NewLogger(output io.Writer, level LogLevel) *Logger {
	if output == nil {
		output = io.Discard
	}
	return &Logger{
		level:   level,
		output:  output,
		session: uuid.New().String()[:8],
	}
}

// Session returns the logger's session ID.
func (l *Logger) Session() string {
	return l.session
}

func (l *Logger) log(level LogLevel, format string, args ...any) {
	if level < l.level {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.output, "%s [%s] %s %s\n",
		time.Now().Format(time.RFC3339), level, l.session,
		fmt.Sprintf(format, args...))
}

// Debugf logs at debug level.
func (l *Logger) Debugf(format string, args ...any) {
	l.log(LogLevelDebug, format, args...)
}

// Infof logs at info level.
func (l *Logger) Infof(format string, args ...any) {
	l.log(LogLevelInfo, format, args...)
}

// Warnf logs at warn level.
func (l *Logger) Warnf(format string, args ...any) {
	l.log(LogLevelWarn, format, args...)
}

// Errorf logs at error level.
func (l *Logger) Errorf(format string, args ...any) {
	l.log(LogLevelError, format, args...)
}
