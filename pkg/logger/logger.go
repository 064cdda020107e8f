package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

type Options struct {
	Level      slog.Level
	TimeFormat string
}

var DefaultOptions = Options{
	Level:      slog.LevelInfo,
	TimeFormat: time.TimeOnly,
}

// Err is a shorthand for the conventional error attribute.
func Err(err error) slog.Attr {
	return slog.Any("error", err)
}

type ctxKey struct{}

// WithRequestID stores a request identifier in ctx; the handler appends
// it to every record logged with a *Context method.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// Handler is a human-oriented slog.Handler with colored levels.
type Handler struct {
	opts  Options
	attrs []slog.Attr
	group string

	mu  *sync.Mutex
	out io.Writer
}

func NewHandler(out io.Writer, opts Options) *Handler {
	return &Handler{
		opts: opts,
		mu:   &sync.Mutex{},
		out:  out,
	}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level
}

var levelColors = map[slog.Level]*color.Color{
	slog.LevelDebug: color.New(color.FgCyan),
	slog.LevelInfo:  color.New(color.FgGreen),
	slog.LevelWarn:  color.New(color.FgYellow),
	slog.LevelError: color.New(color.FgRed),
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	var sb strings.Builder

	sb.WriteString(r.Time.Format(h.opts.TimeFormat))
	sb.WriteByte(' ')

	level := r.Level.String()
	if c, ok := levelColors[r.Level]; ok {
		level = c.Sprint(level)
	}
	sb.WriteString(level)
	sb.WriteByte(' ')
	sb.WriteString(r.Message)

	if id := RequestID(ctx); id != "" {
		h.appendAttr(&sb, slog.String("request_id", id))
	}
	for _, a := range h.attrs {
		h.appendAttr(&sb, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(&sb, a)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err
}

func (h *Handler) appendAttr(sb *strings.Builder, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if h.group != "" {
		key = h.group + "." + key
	}
	fmt.Fprintf(sb, " %s=%v", color.New(color.Faint).Sprint(key), a.Value.Resolve())
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	h2.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &h2
}

func (h *Handler) WithGroup(name string) slog.Handler {
	h2 := *h
	if h2.group != "" {
		h2.group += "." + name
	} else {
		h2.group = name
	}
	return &h2
}
