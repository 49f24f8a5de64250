package config

import (
	"context"
	"log/slog"

	"github.com/unitsmith/unitsmith/pkg/unit"
)

type configKey struct{}

type aliasesKey struct{}

// WithConfig stores the config in the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext retrieves the config from the context, falling back to
// defaults when none was stored.
func FromContext(ctx context.Context) *Config {
	if c, ok := ctx.Value(configKey{}).(*Config); ok {
		return c
	}
	return &Config{
		OutputFormat: DefaultOutput,
		HistoryFile:  DefaultHistoryFile,
	}
}

// WithAliases stores the alias registry in the context.
func WithAliases(ctx context.Context, aliases *unit.AliasManager) context.Context {
	return context.WithValue(ctx, aliasesKey{}, aliases)
}

// AliasesFromContext retrieves the alias registry from the context, falling
// back to a fresh built-in registry.
func AliasesFromContext(ctx context.Context) *unit.AliasManager {
	if a, ok := ctx.Value(aliasesKey{}).(*unit.AliasManager); ok {
		return a
	}
	return unit.NewDefaultAliases()
}

// WithLogger stores the logger in the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}
