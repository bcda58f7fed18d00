package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
)

type contextKey string

const RequestIDKey contextKey = "request_id"

// StackTraceHandler is a handler that adds stack trace to error records
// and extracts request_id from context
type StackTraceHandler struct {
	slog.Handler
}

func (h *StackTraceHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx != nil {
		if reqID, ok := ctx.Value(RequestIDKey).(string); ok {
			r.AddAttrs(slog.String("request_id", reqID))
		}
	}

	if r.Level >= slog.LevelError {
		buf := make([]byte, 4096)
		n := runtime.Stack(buf, false)
		r.AddAttrs(slog.String("stack_trace", string(buf[:n])))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *StackTraceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &StackTraceHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *StackTraceHandler) WithGroup(name string) slog.Handler {
	return &StackTraceHandler{Handler: h.Handler.WithGroup(name)}
}

// WithRequestID stores the request id so every context-aware log line carries it.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// RequestIDFrom returns the request id stored in ctx, if any.
func RequestIDFrom(ctx context.Context) string {
	reqID, _ := ctx.Value(RequestIDKey).(string)

	return reqID
}

// NewStructuredLogger builds the JSON logger tagged with the service name.
func NewStructuredLogger(w io.Writer, level slog.Leveler, service string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
	}

	if level.Level() == slog.LevelDebug {
		opts.AddSource = true
	}

	jsonHandler := slog.NewJSONHandler(w, opts)
	handler := &StackTraceHandler{Handler: jsonHandler}

	return slog.New(handler).With(slog.String("service", service))
}

// InitStructuredLogger initialize structured logger
func InitStructuredLogger(level slog.Leveler, service string) {
	slog.SetDefault(NewStructuredLogger(os.Stdout, level, service))
}
