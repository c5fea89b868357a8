package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/usersystem/internal/app"
	"github.com/polkiloo/usersystem/internal/config"
	"github.com/polkiloo/usersystem/internal/logger"
	"github.com/polkiloo/usersystem/internal/pkg/auth"
	"github.com/polkiloo/usersystem/internal/server/http/handlers"
	"github.com/polkiloo/usersystem/internal/server/http/router"
	"github.com/polkiloo/usersystem/internal/storage"
	"github.com/polkiloo/usersystem/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		storage.Module,
		usecase.Module,
		fx.Provide(func(f *app.RegistryFacade) handlers.RegistryFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
