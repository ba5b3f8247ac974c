// Package debug carries a context flag for verbose request logging.
package debug

import (
	"context"
	"log/slog"
	"os"
)

type contextKey struct{}

// WithDebug returns a context with debug logging enabled or disabled.
func WithDebug(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, contextKey{}, enabled)
}

// IsEnabled reports whether debug logging is on for this context.
func IsEnabled(ctx context.Context) bool {
	enabled, ok := ctx.Value(contextKey{}).(bool)
	return ok && enabled
}

// SetupLogger points the default slog logger at stderr, at debug level when
// debug mode is on and warn level otherwise.
func SetupLogger(debugEnabled bool) {
	level := slog.LevelWarn
	if debugEnabled {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
