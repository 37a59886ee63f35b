// Package logging provides the leveled logger used by the fsutil command
// and server.
package logging

import (
	"io"
	"log"
	"os"
)

// Logger writes leveled, timestamped log lines.
type Logger struct {
	infoLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	verbose     bool
}

// New creates a logger writing info and debug lines to stdout and errors
// to stderr. Debug lines are dropped unless verbose is set.
func New(verbose bool) *Logger {
	return NewWithOutput(os.Stdout, os.Stderr, verbose)
}

// NewWithOutput creates a logger with explicit sinks, used by tests.
func NewWithOutput(out, errOut io.Writer, verbose bool) *Logger {
	return &Logger{
		infoLogger:  log.New(out, "[INFO] ", log.LstdFlags),
		errorLogger: log.New(errOut, "[ERROR] ", log.LstdFlags),
		debugLogger: log.New(out, "[DEBUG] ", log.LstdFlags),
		verbose:     verbose,
	}
}

// Info logs an info message.
func (l *Logger) Info(format string, args ...any) {
	l.infoLogger.Printf(format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...any) {
	l.infoLogger.Printf("[WARN] "+format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...any) {
	l.errorLogger.Printf(format, args...)
}

// Debug logs a debug message when verbose mode is enabled.
func (l *Logger) Debug(format string, args ...any) {
	if l.verbose {
		l.debugLogger.Printf(format, args...)
	}
}
