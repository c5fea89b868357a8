package storage

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/usersystem/internal/config"
	"github.com/polkiloo/usersystem/internal/domain/repository"
	"github.com/polkiloo/usersystem/internal/storage/memory"
	"github.com/polkiloo/usersystem/internal/storage/postgres"
)

// Module picks a storage backend from configuration and exposes its repositories.
var Module = fx.Options(
	fx.Provide(newFactory),
	fx.Provide(func(f repository.Factory) repository.UserRepository { return f.Users() }),
	fx.Invoke(registerLifecycle),
)

type factoryParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

var openPostgres = func(ctx context.Context, dsn string, logger *slog.Logger) (repository.Factory, error) {
	st, err := postgres.New(ctx, dsn, logger)
	if err != nil {
		return nil, err
	}
	return st, nil
}

func newFactory(p factoryParams) (repository.Factory, error) {
	if p.Config.DatabaseURI == "" {
		p.Logger.Info("using in-memory user storage")
		return memory.New(), nil
	}

	f, err := openPostgres(p.Ctx, p.Config.DatabaseURI, p.Logger)
	if err != nil {
		return nil, err
	}
	p.Logger.Info("using postgres user storage")
	return f, nil
}

func registerLifecycle(lc fx.Lifecycle, f repository.Factory) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			f.Close()
			return nil
		},
	})
}
