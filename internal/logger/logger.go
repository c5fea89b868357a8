package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/polkiloo/usersystem/internal/config"
)

const serviceName = "usersystem"

// New creates a preconfigured slog.Logger writing JSON to stdout.
func New(cfg *config.Config) *slog.Logger {
	return newWithWriter(os.Stdout, cfg.LogLevel)
}

func newWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("service", serviceName))
}

// logConfig records the effective configuration. Secrets are never logged.
func logConfig(logger *slog.Logger, cfg *config.Config) {
	storage := "memory"
	if cfg.DatabaseURI != "" {
		storage = "postgres"
	}
	logger.Info("configuration loaded",
		slog.String("run_address", cfg.RunAddress),
		slog.String("storage", storage),
		slog.Duration("token_ttl", cfg.TokenTTL),
		slog.Duration("shutdown_timeout", cfg.ShutdownTimeout),
		slog.String("log_level", cfg.LogLevel.String()),
	)
	if cfg.UsesDefaultJWTSecret() {
		logger.Warn("JWT_SECRET is not set, tokens are signed with the built-in development secret")
	}
}
