package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/objcache/internal/ui/output"
	"go.trai.ch/objcache/internal/ui/style"
)

// PrettyHandler is a slog.Handler writing one colored line per record:
// a level icon, the message and the record's key=value pairs.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	prefix string
	attrs  []string
}

// NewPrettyHandler creates a PrettyHandler writing to w, or stderr when w is nil.
// A nil opts or level selects info.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{out: output.New(w), level: level}
}

// Enabled implements slog.Handler.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle implements slog.Handler.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	icon, color := levelStyle(r.Level)

	parts := make([]string, 0, 1+len(h.attrs)+r.NumAttrs())
	if icon != "" {
		parts = append(parts, icon+" "+r.Message)
	} else {
		parts = append(parts, r.Message)
	}
	parts = append(parts, h.attrs...)
	r.Attrs(func(attr slog.Attr) bool {
		parts = appendAttr(parts, h.prefix, attr)
		return true
	})

	line := h.out.String(strings.Join(parts, " ")).Foreground(termenv.RGBColor(string(color)))
	_, err := h.out.WriteString(line.String() + "\n")
	return err
}

// WithAttrs implements slog.Handler. The attributes are rendered once.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = slices.Grow(slices.Clone(h.attrs), len(attrs))
	for _, attr := range attrs {
		next.attrs = appendAttr(next.attrs, h.prefix, attr)
	}
	return &next
}

// WithGroup implements slog.Handler. Groups nest as dotted key prefixes.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

func levelStyle(level slog.Level) (string, lipgloss.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, style.Red
	case level >= slog.LevelWarn:
		return style.Warning, style.Yellow
	case level < slog.LevelInfo:
		return style.Dot, style.Iris
	default:
		return "", style.Slate
	}
}

// appendAttr renders attr as key=value under prefix.
// Empty attributes are dropped and group values are flattened.
func appendAttr(parts []string, prefix string, attr slog.Attr) []string {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return parts
	}

	if attr.Value.Kind() == slog.KindGroup {
		group := attr.Value.Group()
		if attr.Key != "" {
			prefix += attr.Key + "."
		}
		for _, member := range group {
			parts = appendAttr(parts, prefix, member)
		}
		return parts
	}

	return append(parts, prefix+attr.Key+"="+quote(attr.Value.String()))
}

// quote wraps values that would not read as a single token.
func quote(value string) string {
	if value == "" || strings.ContainsAny(value, " \t\n\"=") {
		return strconv.Quote(value)
	}
	return value
}

