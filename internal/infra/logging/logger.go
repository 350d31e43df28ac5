// Package logging provides file-based logging for todo.
// Entries go to a single log file and never to the console streams,
// which belong to the interactive session.
package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/runoshun/todo/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Logger wraps slog.Logger with lazily opened file output.
type Logger struct {
	file   *os.File
	out    *slog.Logger
	path   string
	mu     sync.Mutex
	level  slog.Level
	broken bool
}

// New creates a new Logger that appends to the file at path.
// If path is empty or "-", logging is disabled.
func New(path string, level slog.Level) *Logger {
	if path == domain.LogDisabled {
		path = ""
	}
	return &Logger{
		path:  path,
		level: level,
	}
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Path returns the log file path, or "" when disabled.
func (l *Logger) Path() string {
	return l.path
}

// logger opens the log file on first use.
// Returns nil if logging is disabled or the file cannot be opened.
func (l *Logger) logger() *slog.Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.out != nil || l.broken {
		return l.out
	}

	f, err := l.open()
	if err != nil {
		// Logging must not interfere with the session; give up quietly.
		l.broken = true
		return nil
	}
	l.file = f
	l.out = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: l.level,
	}))
	return l.out
}

func (l *Logger) open() (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o750); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// Close closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.out = nil
	return err
}

func (l *Logger) log(level slog.Level, category, msg string) {
	if l.path == "" || level < l.level {
		return
	}
	if lg := l.logger(); lg != nil {
		lg.Log(context.Background(), level, msg, slog.String("category", category))
	}
}

// Info logs an info message.
func (l *Logger) Info(category, msg string) {
	l.log(slog.LevelInfo, category, msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(category, msg string) {
	l.log(slog.LevelDebug, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(category, msg string) {
	l.log(slog.LevelWarn, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(category, msg string) {
	l.log(slog.LevelError, category, msg)
}
