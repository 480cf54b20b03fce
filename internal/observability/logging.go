// Package observability provides structured logging for the application.
package observability

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// NewLogger creates the application's JSON slog logger.
func NewLogger() *slog.Logger {
	return NewLoggerTo(os.Stdout)
}

// NewLoggerTo creates a JSON slog logger writing to w; used by tests.
func NewLoggerTo(w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(handler)
}

// StoreLogger provides structured logging for store operations.
type StoreLogger struct {
	store  string
	logger *slog.Logger
}

// NewStoreLogger creates a StoreLogger for the named store.
func NewStoreLogger(store string, logger *slog.Logger) *StoreLogger {
	if logger == nil {
		logger = NewLogger()
	}
	return &StoreLogger{store: store, logger: logger}
}

// LogOp logs a completed store operation.
func (l *StoreLogger) LogOp(ctx context.Context, operation string, fields map[string]interface{}) {
	attrs := []any{
		slog.String("store", l.store),
		slog.String("operation", operation),
	}
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	l.logger.InfoContext(ctx, "store operation", attrs...)
}

// LogError logs a failed store operation.
func (l *StoreLogger) LogError(ctx context.Context, operation string, err error) {
	l.logger.ErrorContext(ctx, "store operation failed",
		slog.String("store", l.store),
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	)
}

// Logger returns the underlying slog logger.
func (l *StoreLogger) Logger() *slog.Logger {
	return l.logger
}
