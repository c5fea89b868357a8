package logger

import "go.uber.org/fx"

// Module wires slog logger for dependency injection and reports the loaded configuration.
var Module = fx.Options(
	fx.Provide(New),
	fx.Invoke(logConfig),
)
