package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles used by the pretty text handler. The styles are
// bound to a renderer for the handler's writer, so escape codes are only
// emitted when that writer is a color-capable terminal.
type palette struct {
	key, str, num, yes, no, dur, tim lipgloss.Style
	trace, debug, info, warn, err    lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().
			Foreground(lipgloss.Color(c)).
			TabWidth(lipgloss.NoTabConversion)
	}

	return palette{
		key:   fg("8"),
		str:   fg("6"),
		num:   fg("3"),
		yes:   fg("2"),
		no:    fg("1"),
		dur:   fg("5"),
		tim:   fg("4"),
		trace: fg("8"),
		debug: fg("4"),
		info:  fg("2"),
		warn:  fg("3"),
		err:   fg("1").Bold(true),
	}
}

func (p palette) level(l slog.Level) lipgloss.Style {
	switch {
	case l >= slog.LevelError:
		return p.err
	case l >= slog.LevelWarn:
		return p.warn
	case l >= slog.LevelInfo:
		return p.info
	case l >= slog.LevelDebug:
		return p.debug
	default:
		return p.trace
	}
}

// prettyTextHandler implements a colorized key=value handler.
type prettyTextHandler struct {
	opts   slog.HandlerOptions
	style  palette
	mu     *sync.Mutex
	w      io.Writer
	prefix string // pre-rendered attributes from WithAttrs
	groups []string
}

func newPrettyTextHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyTextHandler {
	return &prettyTextHandler{
		opts:  *opts,
		style: newPalette(w),
		mu:    &sync.Mutex{},
		w:     w,
	}
}

func (h *prettyTextHandler) Enabled(_ context.Context, level slog.Level) bool {
	floor := slog.LevelInfo
	if h.opts.Level != nil {
		floor = h.opts.Level.Level()
	}

	return level >= floor
}

func (h *prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		h.writeBuiltin(buf, slog.Time(slog.TimeKey, r.Time))
	}

	h.writeBuiltin(buf, slog.Any(slog.LevelKey, r.Level))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			h.writeBuiltin(buf, slog.String(
				slog.SourceKey,
				fmt.Sprintf("%s:%d", src.File, src.Line),
			))
		}
	}

	h.writeBuiltin(buf, slog.String(slog.MessageKey, r.Message))

	if h.prefix != "" {
		buf.WriteByte(' ')
		buf.WriteString(h.prefix)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, h.groups, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	buf := new(bytes.Buffer)
	buf.WriteString(h.prefix)

	for _, a := range attrs {
		h.writeAttr(buf, h.groups, a)
	}

	c := *h
	c.prefix = strings.TrimPrefix(buf.String(), " ")

	return &c
}

func (h *prettyTextHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.groups = append(h.groups[:len(h.groups):len(h.groups)], name)

	return &c
}

// writeBuiltin writes one of the record's built-in attributes, after passing
// it through ReplaceAttr.
func (h *prettyTextHandler) writeBuiltin(buf *bytes.Buffer, a slog.Attr) {
	if h.opts.ReplaceAttr != nil {
		a = h.opts.ReplaceAttr(nil, a)
	}

	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Key == slog.LevelKey {
		// ReplaceAttr may have turned the level into a string already.
		if l, ok := a.Value.Any().(slog.Level); ok {
			h.writeKey(buf, a.Key)
			buf.WriteString(h.style.level(l).Render(l.String()))

			return
		}
	}

	h.writeAttr(buf, nil, a)
}

func (h *prettyTextHandler) writeAttr(
	buf *bytes.Buffer,
	groups []string,
	a slog.Attr,
) {
	a.Value = a.Value.Resolve()

	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		inner := groups
		if a.Key != "" {
			inner = append(groups[:len(groups):len(groups)], a.Key)
		}

		for _, ga := range a.Value.Group() {
			h.writeAttr(buf, inner, ga)
		}

		return
	}

	key := a.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}

	h.writeKey(buf, key)
	h.writeValue(buf, a.Key, a.Value)
}

func (h *prettyTextHandler) writeKey(buf *bytes.Buffer, key string) {
	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	buf.WriteString(h.style.key.Render(key))
	buf.WriteByte('=')
}

func (h *prettyTextHandler) writeValue(
	buf *bytes.Buffer,
	key string,
	v slog.Value,
) {
	s := h.style

	switch v.Kind() {
	case slog.KindString:
		if key == slog.LevelKey {
			buf.WriteString(s.level(slog.Level(ParseLevel(v.String()))).Render(v.String()))

			return
		}

		buf.WriteString(s.str.Render(v.String()))

	case slog.KindInt64:
		buf.WriteString(s.num.Render(strconv.FormatInt(v.Int64(), 10)))

	case slog.KindUint64:
		buf.WriteString(s.num.Render(strconv.FormatUint(v.Uint64(), 10)))

	case slog.KindFloat64:
		buf.WriteString(s.num.Render(strconv.FormatFloat(v.Float64(), 'g', -1, 64)))

	case slog.KindBool:
		if v.Bool() {
			buf.WriteString(s.yes.Render("true"))
		} else {
			buf.WriteString(s.no.Render("false"))
		}

	case slog.KindDuration:
		buf.WriteString(s.dur.Render(v.Duration().String()))

	case slog.KindTime:
		buf.WriteString(s.tim.Render(v.Time().String()))

	default:
		if err, ok := v.Any().(error); ok {
			buf.WriteString(s.no.Render(err.Error()))

			return
		}

		buf.WriteString(s.str.Render(v.String()))
	}
}
