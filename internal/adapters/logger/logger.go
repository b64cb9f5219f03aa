// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.hartos.dev/mach/internal/core/ports"
)

// messager describes an error that reports its own message without the rest
// of the chain. zerr errors provide this; standard errors do not.
type messager interface {
	Message() string
}

// Logger implements ports.Logger using log/slog with a pretty handler.
type Logger struct {
	logger *slog.Logger
}

// New creates a Logger writing to stderr.
func New() ports.Logger {
	return &Logger{
		logger: slog.New(NewPrettyHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})),
	}
}

// NewWithOutput creates a Logger writing to w. Used by tests.
func NewWithOutput(w io.Writer) ports.Logger {
	return &Logger{
		logger: slog.New(NewPrettyHandler(w, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})),
	}
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.logger.Warn(msg)
}

// Error logs an error with its cause chain rendered hierarchically.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}
	l.logger.Error(formatChain(err))
}

// formatChain walks the error chain, using raw zerr messages where available
// and the full Error() text for the first standard error encountered.
func formatChain(err error) string {
	var messages []string
	for current := err; current != nil; {
		if m, ok := current.(messager); ok {
			messages = append(messages, m.Message())
			current = errors.Unwrap(current)
			continue
		}
		messages = append(messages, current.Error())
		break
	}

	lines := []string{"Error: " + messages[0]}
	for _, msg := range messages[1:] {
		lines = append(lines, "  caused by: "+msg)
	}
	return strings.Join(lines, "\n")
}
