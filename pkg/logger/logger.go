package logger

import (
	"io"
	"strings"
	"time"

	charm "github.com/charmbracelet/log"

	errUtils "github.com/cloudposse/detect-changes/errors"
)

// Level is a logging level. It is the charmbracelet/log level so levels can be passed through unchanged.
type Level = charm.Level

const (
	// TraceLevel is one step more verbose than DebugLevel.
	TraceLevel Level = charm.DebugLevel - 1
	DebugLevel Level = charm.DebugLevel
	InfoLevel  Level = charm.InfoLevel
	WarnLevel  Level = charm.WarnLevel
	ErrorLevel Level = charm.ErrorLevel
	FatalLevel Level = charm.FatalLevel
)

// TimeFormat is used for every log line. CI logs are read after the fact, so lines carry a full timestamp.
const TimeFormat = time.RFC3339

// Logger wraps a charmbracelet logger and adds the trace level.
type Logger struct {
	*charm.Logger
}

// NewLogger wraps an existing charmbracelet logger.
func NewLogger(l *charm.Logger) *Logger {
	return &Logger{Logger: l}
}

// NewWithOutput creates a styled logger writing to w.
func NewWithOutput(w io.Writer) *Logger {
	l := charm.NewWithOptions(w, charm.Options{
		ReportTimestamp: true,
		TimeFormat:      TimeFormat,
		Level:           InfoLevel,
	})
	l.SetStyles(getLogStyles())
	return NewLogger(l)
}

// Trace logs a message at trace level.
func (l *Logger) Trace(msg interface{}, keyvals ...interface{}) {
	l.Logger.Log(TraceLevel, msg, keyvals...)
}

// LevelString returns the lower-case name of a level, including trace.
func LevelString(level Level) string {
	if level == TraceLevel {
		return "trace"
	}
	return level.String()
}

// ParseLogLevel converts a configured level name into a Level.
// An empty string selects InfoLevel.
func ParseLogLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "":
		return InfoLevel, nil
	case "trace":
		return TraceLevel, nil
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	default:
		return InfoLevel, errUtils.Build(errUtils.ErrInvalidLogLevel).
			WithContext("level", level).
			WithHint("Supported log levels are trace, debug, info, warn, error").
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}
}
