package app

import (
	"context"

	"github.com/polkiloo/usersystem/internal/domain/model"
	"github.com/polkiloo/usersystem/internal/domain/repository"
	"github.com/polkiloo/usersystem/internal/usecase"
)

// RegistryFacade exposes the user registry to transport layers.
type RegistryFacade struct {
	users   *usecase.UserSystem
	storage repository.Factory
}

func NewRegistryFacade(users *usecase.UserSystem, storage repository.Factory) *RegistryFacade {
	return &RegistryFacade{users: users, storage: storage}
}

func (f *RegistryFacade) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	return f.users.RegisterUser(ctx, name, email, password)
}

func (f *RegistryFacade) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return f.users.FindUserByEmail(ctx, email)
}

func (f *RegistryFacade) Users(ctx context.Context) ([]model.User, error) {
	return f.users.Users(ctx)
}

func (f *RegistryFacade) TotalUsers(ctx context.Context) (int, error) {
	return f.users.TotalUsers(ctx)
}

func (f *RegistryFacade) User(ctx context.Context, id string) (*model.User, error) {
	return f.users.GetByID(ctx, id)
}

func (f *RegistryFacade) Authenticate(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.users.Authenticate(ctx, email, password)
	return token, err
}

func (f *RegistryFacade) ParseToken(token string) (string, error) {
	return f.users.ParseToken(token)
}

func (f *RegistryFacade) HealthCheck(ctx context.Context) error {
	return f.storage.HealthCheck(ctx)
}
