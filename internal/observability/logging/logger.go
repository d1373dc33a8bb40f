// Package logging provides structured logging utilities on top of the
// standard library's log/slog package, with consistent configuration and
// request-ID propagation.
package logging

import (
	"context"
	"log/slog"
	"os"

	"intake-backend/internal/handler/http/requestid"
)

// NewLogger creates a structured logger with JSON output. The log level
// is controlled via the LOG_LEVEL environment variable ("debug" enables
// debug logging; anything else means info).
func NewLogger() *slog.Logger {
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// WithRequestID returns a logger that includes the request ID from the
// context, enabling request tracing across log entries.
func WithRequestID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if reqID := requestid.FromContext(ctx); reqID != "" {
		return logger.With(slog.String("request_id", reqID))
	}
	return logger
}
