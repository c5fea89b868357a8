package usecase

import "go.uber.org/fx"

// Module provides the user registry to the fx container.
var Module = fx.Provide(NewUserSystem)
