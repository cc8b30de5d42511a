// Package logging provides the leveled diagnostic logger used by grop.
//
// Diagnostics always go to a separate writer (stderr in the CLI) so that
// match output on stdout stays machine readable.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const (
	levelTrace int = iota
	levelDebug
	levelInfo
	levelWarn
	levelError
)

// Logger is the logging surface the core packages depend on.
type Logger interface {
	Tracef(format string, args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// ConsoleLogger writes "[HH:MM:SS] [LEVEL] message" lines and drops messages
// below its configured level. Level tags are colored when the writer is a
// terminal.
type ConsoleLogger struct {
	writer      io.Writer
	level       int
	mutex       sync.Mutex
	colorOutput bool
	now         func() time.Time
}

// NewConsoleLogger creates a logger for writer at the given level. A nil
// writer discards everything.
func NewConsoleLogger(writer io.Writer, level string) *ConsoleLogger {
	lvl, err := ParseLevel(level)
	if err != nil {
		lvl = "warn"
	}
	return &ConsoleLogger{
		writer:      writer,
		level:       levelToInt(lvl),
		colorOutput: isTerminal(writer),
		now:         time.Now,
	}
}

// ParseLevel validates a level name and returns its canonical form. An empty
// name means "warn".
func ParseLevel(level string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(level))
	switch normalized {
	case "":
		return "warn", nil
	case "trace", "debug", "info", "warn", "error":
		return normalized, nil
	case "warning":
		return "warn", nil
	default:
		return "", fmt.Errorf("invalid log level %q (expected: trace|debug|info|warn|error)", level)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func levelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "error":
		return levelError
	default:
		return levelWarn
	}
}

func (cl *ConsoleLogger) Tracef(format string, args ...any) { cl.logf(levelTrace, format, args...) }
func (cl *ConsoleLogger) Debugf(format string, args ...any) { cl.logf(levelDebug, format, args...) }
func (cl *ConsoleLogger) Infof(format string, args ...any)  { cl.logf(levelInfo, format, args...) }
func (cl *ConsoleLogger) Warnf(format string, args ...any)  { cl.logf(levelWarn, format, args...) }
func (cl *ConsoleLogger) Errorf(format string, args ...any) { cl.logf(levelError, format, args...) }

// Enabled reports whether messages at level would be written.
func (cl *ConsoleLogger) Enabled(level string) bool {
	if cl == nil || cl.writer == nil {
		return false
	}
	return levelToInt(level) >= cl.level
}

func (cl *ConsoleLogger) logf(level int, format string, args ...any) {
	if cl == nil || cl.writer == nil || level < cl.level {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := cl.now().Format("15:04:05")
	tag := levelTag(level)
	if cl.colorOutput {
		tag = levelColor(level).Sprint(tag)
	}
	_, _ = fmt.Fprintf(cl.writer, "[%s] [%s] %s\n", ts, tag, fmt.Sprintf(format, args...))
}

func levelTag(level int) string {
	switch level {
	case levelTrace:
		return "TRACE"
	case levelDebug:
		return "DEBUG"
	case levelInfo:
		return "INFO"
	case levelWarn:
		return "WARN"
	default:
		return "ERROR"
	}
}

func levelColor(level int) *color.Color {
	var c *color.Color
	switch level {
	case levelTrace:
		c = color.New(color.FgHiBlack)
	case levelDebug:
		c = color.New(color.FgCyan)
	case levelInfo:
		c = color.New(color.FgBlue)
	case levelWarn:
		c = color.New(color.FgYellow)
	default:
		c = color.New(color.FgRed)
	}
	// The writer was already checked; ignore the stdout-based global switch.
	c.EnableColor()
	return c
}

// NopLogger discards every message.
type NopLogger struct{}

func Nop() Logger { return NopLogger{} }

func (NopLogger) Tracef(string, ...any) {}
func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}
