package logging

import (
	"context"
	"log/slog"
)

type commandKey struct{}

// WithCommand records the CLI command name on ctx.
func WithCommand(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandKey{}, name)
}

// CommandFromContext returns the command name stored by WithCommand.
func CommandFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	name, ok := ctx.Value(commandKey{}).(string)
	return name, ok && name != ""
}

// WithContext returns a logger augmented with fields derived from ctx.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	if name, ok := CommandFromContext(ctx); ok {
		return logger.With(String(FieldCommand, name))
	}
	return logger
}
