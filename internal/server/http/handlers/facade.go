package handlers

import (
	"context"

	"github.com/polkiloo/usersystem/internal/domain/model"
)

// UserFacade describes registry operations exposed via HTTP.
type UserFacade interface {
	Register(ctx context.Context, name, email, password string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Users(ctx context.Context) ([]model.User, error)
	TotalUsers(ctx context.Context) (int, error)
	User(ctx context.Context, id string) (*model.User, error)
}

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Authenticate(ctx context.Context, email, password string) (string, error)
	ParseToken(token string) (string, error)
}

type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// RegistryFacade aggregates the full set of operations used across handlers.
type RegistryFacade interface {
	UserFacade
	AuthFacade
	HealthFacade
}
