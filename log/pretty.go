package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// defaultOutput returns the writer used by the package-level default logger.
func defaultOutput() io.Writer { return os.Stderr }

// Styles used by the pretty handler.
//
//nolint:gochecknoglobals
var (
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	msgStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	traceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	debugStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// levelStyle returns the style for rendering the given level tag.
func levelStyle(level slog.Level) lipgloss.Style {
	switch {
	case level <= slog.Level(LevelTrace):
		return traceStyle
	case level < slog.LevelInfo:
		return debugStyle
	case level < slog.LevelWarn:
		return infoStyle
	case level < slog.LevelError:
		return warnStyle
	default:
		return errStyle
	}
}

// prettyHandler implements a colorized slog.Handler for interactive use.
// Text format renders one record per line with styled keys; JSON format
// renders indented multiline objects.
type prettyHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	format Format
	attrs  []slog.Attr
	groups []string
}

func newPrettyHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
	format Format,
) *prettyHandler {
	return &prettyHandler{
		opts:   *opts,
		mu:     &sync.Mutex{},
		w:      w,
		format: format,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if h.format == FormatJSON {
		h.writeJSON(buf, r)
	} else {
		h.writeText(buf, r)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...)

	return &clone
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.groups = append(h.groups[:len(h.groups):len(h.groups)], name)

	return &clone
}

func (h *prettyHandler) writeText(buf *bytes.Buffer, r slog.Record) {
	if !r.Time.IsZero() {
		if a := h.replace(slog.Time(slog.TimeKey, r.Time)); !a.Equal(slog.Attr{}) {
			buf.WriteString(keyStyle.Render(a.Value.String()))
			buf.WriteByte(' ')
		}
	}

	level := h.replace(slog.Any(slog.LevelKey, r.Level))
	buf.WriteString(levelStyle(r.Level).Render(level.Value.String()))
	buf.WriteByte(' ')

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			buf.WriteString(keyStyle.Render(
				fmt.Sprintf("%s:%d", src.File, src.Line),
			))
			buf.WriteByte(' ')
		}
	}

	buf.WriteString(msgStyle.Render(r.Message))

	write := func(a slog.Attr) {
		buf.WriteByte(' ')
		buf.WriteString(keyStyle.Render(h.qualify(a.Key) + "="))
		buf.WriteString(a.Value.String())
	}

	for _, a := range h.attrs {
		write(a)
	}

	r.Attrs(func(a slog.Attr) bool {
		write(a)

		return true
	})

	buf.WriteByte('\n')
}

func (h *prettyHandler) writeJSON(buf *bytes.Buffer, r slog.Record) {
	obj := make(map[string]any)

	if !r.Time.IsZero() {
		if a := h.replace(slog.Time(slog.TimeKey, r.Time)); !a.Equal(slog.Attr{}) {
			obj[slog.TimeKey] = a.Value.String()
		}
	}

	level := h.replace(slog.Any(slog.LevelKey, r.Level))
	obj[slog.LevelKey] = level.Value.String()
	obj[slog.MessageKey] = r.Message

	for _, a := range h.attrs {
		obj[h.qualify(a.Key)] = a.Value.Resolve().Any()
	}

	r.Attrs(func(a slog.Attr) bool {
		obj[h.qualify(a.Key)] = a.Value.Resolve().Any()

		return true
	})

	data, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		data = strconv.AppendQuote(nil, r.Message)
	}

	buf.Write(data)
	buf.WriteByte('\n')
}

// qualify prefixes a key with the accumulated group path.
func (h *prettyHandler) qualify(key string) string {
	if len(h.groups) == 0 {
		return key
	}

	out := ""
	for _, g := range h.groups {
		out += g + "."
	}

	return out + key
}

// replace applies the configured ReplaceAttr function, if any.
func (h *prettyHandler) replace(a slog.Attr) slog.Attr {
	if h.opts.ReplaceAttr == nil {
		return a
	}

	return h.opts.ReplaceAttr(h.groups, a)
}
