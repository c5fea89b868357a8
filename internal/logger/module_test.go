package logger

import (
	"context"
	"log/slog"
	"testing"

	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/polkiloo/usersystem/internal/config"
)

func TestModuleProvidesLogger(t *testing.T) {
	var resolved *slog.Logger
	app := fxtest.New(t,
		fx.Supply(&config.Config{LogLevel: slog.LevelError}),
		Module,
		fx.Populate(&resolved),
	)
	app.RequireStart()
	t.Cleanup(func() { app.RequireStop() })

	if resolved == nil {
		t.Fatal("expected logger to be populated")
	}
	if resolved.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatal("expected configured level to be applied")
	}
}
