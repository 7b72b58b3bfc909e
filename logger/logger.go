// Package logger provides the leveled, colored loggers handed to every component.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"
)

var ErrNilWriter = errors.New("logger writer is nil")

// Logger writes "[PREFIX] [LEVEL] message" lines, colored for terminals.
type Logger struct {
	prefix string
	out    *log.Logger
}

// New creates a Logger that tags every line with prefix drawn in color.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}

	return &Logger{
		prefix: fmt.Sprintf("%s[%s]%s", color, prefix, ColorReset),
		out:    log.New(w, "", log.LstdFlags),
	}, nil
}

// Info logs a routine event.
func (l *Logger) Info(msg string) {
	l.write(infoColor, "INFO", msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.write(warningColor, "WARNING", msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.write(errorColor, "ERROR", msg)
}

func (l *Logger) write(color, level, msg string) {
	l.out.Printf("%s %s[%s]%s %s", l.prefix, color, level, ColorReset, msg)
}
