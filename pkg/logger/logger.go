// Package logger provides structured logging for the service layer. It wraps
// zerolog behind the small fluent API the services use.
package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const (
	// TraceIDKey carries the per-request trace identifier.
	TraceIDKey contextKey = "trace_id"
	// UserIDKey carries the authenticated user identifier.
	UserIDKey contextKey = "user_id"
)

// Logger is a named structured logger.
type Logger struct {
	zl zerolog.Logger
}

// New creates a logger writing to w.
func New(name string, w io.Writer) *Logger {
	zl := zerolog.New(w).With().Timestamp().Str("service", name).Logger()
	return &Logger{zl: zl}
}

// NewDefault creates a logger writing to stderr.
func NewDefault(name string) *Logger {
	return New(name, os.Stderr)
}

// WithField returns a logger with an extra field attached.
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{zl: l.zl.With().Interface(key, value).Logger()}
}

// WithFields returns a logger with several fields attached.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	ctx := l.zl.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	return &Logger{zl: ctx.Logger()}
}

// WithError returns a logger with the error attached.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{zl: l.zl.With().Err(err).Logger()}
}

// WithContext returns a logger carrying the trace and user identifiers found
// in ctx, if any.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	zctx := l.zl.With()
	if traceID := GetTraceID(ctx); traceID != "" {
		zctx = zctx.Str(string(TraceIDKey), traceID)
	}
	if userID := GetUserID(ctx); userID != "" {
		zctx = zctx.Str(string(UserIDKey), userID)
	}
	return &Logger{zl: zctx.Logger()}
}

func (l *Logger) Debug(msg string) { l.zl.Debug().Msg(msg) }
func (l *Logger) Info(msg string)  { l.zl.Info().Msg(msg) }
func (l *Logger) Warn(msg string)  { l.zl.Warn().Msg(msg) }
func (l *Logger) Error(msg string) { l.zl.Error().Msg(msg) }

// LogRequest emits one access-log line for a completed HTTP request.
func (l *Logger) LogRequest(ctx context.Context, method, path string, status int, duration time.Duration) {
	l.WithContext(ctx).zl.Info().
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Dur("duration", duration).
		Msg("http request")
}

// NewTraceID returns a fresh trace identifier.
func NewTraceID() string {
	return uuid.NewString()
}

// WithTraceID stores a trace identifier in the context.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// GetTraceID returns the trace identifier stored in ctx, or "".
func GetTraceID(ctx context.Context) string {
	if v, ok := ctx.Value(TraceIDKey).(string); ok {
		return v
	}
	return ""
}

// WithUserID stores the authenticated user identifier in the context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// GetUserID returns the user identifier stored in ctx, or "".
func GetUserID(ctx context.Context) string {
	if v, ok := ctx.Value(UserIDKey).(string); ok {
		return v
	}
	return ""
}
