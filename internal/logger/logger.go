// Package logger provides verbose logging for the Stony News CLI.
// When verbose mode is enabled via the --verbose flag, structured debug
// records are written to stderr so users can follow the dispatch pipeline
// (grounded attempt, fallback, parsing).
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	log               = newLogger(os.Stderr)
)

// newLogger builds a text logger without timestamps; verbose output is read
// interactively, so times add noise.
func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// SetVerbose enables or disables verbose logging.
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

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	log = newLogger(w)
}

// Debug logs a formatted message at debug level if verbose mode is enabled.
func Debug(format string, args ...any) {
	emit(slog.LevelDebug, fmt.Sprintf(format, args...))
}

// Info logs a formatted message at info level if verbose mode is enabled.
func Info(format string, args ...any) {
	emit(slog.LevelInfo, fmt.Sprintf(format, args...))
}

// Warn logs a formatted message at warn level if verbose mode is enabled.
func Warn(format string, args ...any) {
	emit(slog.LevelWarn, fmt.Sprintf(format, args...))
}

// Event logs msg with structured key/value attributes at info level.
func Event(msg string, attrs ...any) {
	emit(slog.LevelInfo, msg, attrs...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

func emit(level slog.Level, msg string, attrs ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		log.Log(context.Background(), level, msg, attrs...)
	}
}
