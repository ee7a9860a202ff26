// Package logger provides leveled logging for the cloudkit CLI.
// Debug and info messages are printed to stderr only when verbose mode is
// enabled via the --verbose flag; warnings and errors are always printed.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level orders log messages by severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelTags = [...]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

// String returns the tag printed for the level.
func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
	return levelTags[l]
}

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables debug and info output.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Enabled reports whether messages at level are currently printed.
func Enabled(level Level) bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled(level)
}

func enabled(level Level) bool {
	return verbose || level >= LevelWarn
}

// logf holds the write lock so concurrent messages never interleave.
func logf(level Level, component, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !enabled(level) {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if component != "" {
		msg = component + ": " + msg
	}
	fmt.Fprintf(output, "[%s] %s\n", level, msg)
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) { logf(LevelDebug, "", format, args...) }

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) { logf(LevelInfo, "", format, args...) }

// Warn prints a warning.
func Warn(format string, args ...any) { logf(LevelWarn, "", format, args...) }

// Error prints an error.
func Error(format string, args ...any) { logf(LevelError, "", format, args...) }

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.Lock()
	defer mu.Unlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Component prefixes messages with the name of the emitting package.
type Component string

// Debug prints a component message if verbose mode is enabled.
func (c Component) Debug(format string, args ...any) {
	logf(LevelDebug, string(c), format, args...)
}

// Info prints a component message if verbose mode is enabled.
func (c Component) Info(format string, args ...any) {
	logf(LevelInfo, string(c), format, args...)
}

// Warn prints a component warning.
func (c Component) Warn(format string, args ...any) {
	logf(LevelWarn, string(c), format, args...)
}

// Error prints a component error.
func (c Component) Error(format string, args ...any) {
	logf(LevelError, string(c), format, args...)
}
