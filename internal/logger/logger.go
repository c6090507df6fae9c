package logger

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"go.opentelemetry.io/otel/trace"
)

// New builds the process logger.
// Kubernetes, prod and dev get JSON lines for log aggregation; anything else
// gets a text handler with red ERROR messages. Every handler is wrapped so
// that records logged with a span in the context carry trace_id/span_id.
func New() *slog.Logger {
	return NewWithWriter(os.Stdout, os.Getenv("ENV"))
}

// NewWithWriter is New with an explicit sink and environment name.
func NewWithWriter(w io.Writer, env string) *slog.Logger {
	_, inK8s := os.LookupEnv("KUBERNETES_SERVICE_HOST")

	var handler slog.Handler
	if inK8s || env == "prod" || env == "dev" {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     slog.LevelInfo,
			AddSource: true,
		})
	} else {
		handler = newColorTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return slog.New(&traceContextHandler{handler: handler})
}

func NewWithServiceContext(serviceName, version string) *slog.Logger {
	return New().With(
		slog.String("service", serviceName),
		slog.String("version", version),
		slog.String("environment", os.Getenv("ENV")),
	)
}

// Discard returns a logger that drops everything. Used by tests and the CLI.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// colorTextHandler renders through a text handler into a scratch buffer and
// wraps ERROR lines in red before they reach the sink. The buffer, lock and
// sink are shared by every handler derived via WithAttrs or WithGroup.
type colorTextHandler struct {
	handler slog.Handler
	out     *colorSink
}

type colorSink struct {
	mu  sync.Mutex
	buf bytes.Buffer
	w   io.Writer
}

func newColorTextHandler(w io.Writer, opts *slog.HandlerOptions) *colorTextHandler {
	out := &colorSink{w: w}
	return &colorTextHandler{handler: slog.NewTextHandler(&out.buf, opts), out: out}
}

func (h *colorTextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *colorTextHandler) Handle(ctx context.Context, r slog.Record) error {
	h.out.mu.Lock()
	defer h.out.mu.Unlock()

	h.out.buf.Reset()
	if err := h.handler.Handle(ctx, r); err != nil {
		return err
	}
	line := h.out.buf.Bytes()
	if r.Level >= slog.LevelError {
		line = append(append([]byte("\x1b[31m"), bytes.TrimSuffix(line, []byte("\n"))...), "\x1b[0m\n"...)
	}
	_, err := h.out.w.Write(line)
	return err
}

func (h *colorTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &colorTextHandler{handler: h.handler.WithAttrs(attrs), out: h.out}
}

func (h *colorTextHandler) WithGroup(name string) slog.Handler {
	return &colorTextHandler{handler: h.handler.WithGroup(name), out: h.out}
}

type traceContextHandler struct {
	handler slog.Handler
}

func (h *traceContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *traceContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.IsValid() {
		r.AddAttrs(
			slog.String("trace_id", spanCtx.TraceID().String()),
			slog.String("span_id", spanCtx.SpanID().String()),
		)
	}
	return h.handler.Handle(ctx, r)
}

func (h *traceContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &traceContextHandler{handler: h.handler.WithAttrs(attrs)}
}

func (h *traceContextHandler) WithGroup(name string) slog.Handler {
	return &traceContextHandler{handler: h.handler.WithGroup(name)}
}
