package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/muesli/termenv"
	"go.hartos.dev/mach/internal/ui/output"
	"go.hartos.dev/mach/internal/ui/style"
)

// PrettyHandler is a slog.Handler producing human-readable, colored output.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
}

// NewPrettyHandler creates a PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	level := slog.Leveler(slog.LevelInfo)
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}
	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var msg string
	var color termenv.Color

	switch r.Level {
	case slog.LevelWarn:
		msg = style.Warning + " " + r.Message
		color = termenv.RGBColor(string(style.Yellow))
	case slog.LevelError:
		msg = style.Cross + " " + r.Message
		color = termenv.RGBColor(string(style.Red))
	default:
		msg = r.Message
		color = termenv.RGBColor(string(style.Steel))
	}

	parts := make([]string, 0, len(h.attrs)+r.NumAttrs())
	for _, attr := range h.attrs {
		parts = append(parts, attr.String())
	}
	r.Attrs(func(attr slog.Attr) bool {
		parts = append(parts, attr.String())
		return true
	})
	if len(parts) > 0 {
		msg += " " + strings.Join(parts, " ")
	}

	styled := h.out.String(msg).Foreground(color)
	_, err := h.out.WriteString(styled.String() + "\n")
	return err
}

// WithAttrs returns a handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &PrettyHandler{out: h.out, level: h.level, attrs: merged}
}

// WithGroup returns the handler unchanged; groups are not used by the CLI.
func (h *PrettyHandler) WithGroup(_ string) slog.Handler {
	return h
}
