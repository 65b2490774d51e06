// Package log is a small leveled logger over the standard library logger.
package log

import (
	"fmt"
	"io"
	"log"
	"strings"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// LevelFromString parses a level name, ignoring case.
func LevelFromString(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "ERROR":
		return LevelError, nil
	case "NONE":
		return LevelNone, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

type Logger struct {
	logger *log.Logger
	level  *Level
	fields string
}

// New returns a logger writing lines at or above level to out.
func New(out io.Writer, level Level) *Logger {
	return &Logger{
		logger: log.New(out, "", 0),
		level:  &level,
	}
}

// Discard returns a logger that writes nothing.
func Discard() *Logger {
	return New(io.Discard, LevelNone)
}

// With returns a logger that appends key=value to every line. The child
// shares the parent's output and level.
func (l *Logger) With(key string, value any) *Logger {
	return &Logger{
		logger: l.logger,
		level:  l.level,
		fields: l.fields + fmt.Sprintf(" %s=%v", key, value),
	}
}

func (l *Logger) printf(level Level, format string, v ...any) {
	if *l.level > level {
		return
	}
	l.logger.Print(level.String() + ": " + fmt.Sprintf(format, v...) + l.fields)
}

func (l *Logger) Debugf(format string, v ...any) { l.printf(LevelDebug, format, v...) }

func (l *Logger) Infof(format string, v ...any) { l.printf(LevelInfo, format, v...) }

func (l *Logger) Warnf(format string, v ...any) { l.printf(LevelWarn, format, v...) }

func (l *Logger) Errorf(format string, v ...any) { l.printf(LevelError, format, v...) }

// SetLevel changes the threshold for l and every logger derived from it.
func (l *Logger) SetLevel(level Level) {
	*l.level = level
}

func (l *Logger) Level() Level {
	return *l.level
}
