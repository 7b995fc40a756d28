// Package logger provides the small prefixed console logger used across
// the service.
package logger

import (
	"errors"
	"io"
	"log"
)

const colorReset = "\033[0m"

// Logger writes leveled, color-prefixed log lines.
type Logger struct {
	prefix string
	color  string
	out    *log.Logger
}

// New creates a logger that prefixes every line with the given tag in the
// given ANSI color.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, errors.New("logger: nil writer")
	}
	return &Logger{
		prefix: prefix,
		color:  color,
		out:    log.New(w, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) { l.write("INFO", msg) }

// Warning logs a warning message.
func (l *Logger) Warning(msg string) { l.write("WARNING", msg) }

// Error logs an error message.
func (l *Logger) Error(msg string) { l.write("ERROR", msg) }

func (l *Logger) write(level, msg string) {
	l.out.Printf("%s[%s] [%s]%s %s", l.color, l.prefix, level, colorReset, msg)
}
