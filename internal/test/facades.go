package test

import (
	"context"

	"github.com/polkiloo/usersystem/internal/domain/model"
)

// UserFacadeStub provides controllable behaviour for user endpoints.
type UserFacadeStub struct {
	RegisterFn func(context.Context, string, string, string) (*model.User, error)
	FindFn     func(context.Context, string) (*model.User, error)
	UsersFn    func(context.Context) ([]model.User, error)
	TotalFn    func(context.Context) (int, error)
	UserFn     func(context.Context, string) (*model.User, error)
}

// Register delegates to provided function or echoes the input back as a user.
func (s UserFacadeStub) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, name, email, password)
	}
	return &model.User{ID: "user-1", Name: name, Email: email, Password: password, PasswordHash: "hash:" + password}, nil
}

// FindByEmail returns a sample user with the requested email.
func (s UserFacadeStub) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.FindFn != nil {
		return s.FindFn(ctx, email)
	}
	u := SampleUser()
	u.Email = email
	return u, nil
}

// Users returns predefined users.
func (s UserFacadeStub) Users(ctx context.Context) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx)
	}
	return []model.User{*SampleUser()}, nil
}

// TotalUsers returns predefined count.
func (s UserFacadeStub) TotalUsers(ctx context.Context) (int, error) {
	if s.TotalFn != nil {
		return s.TotalFn(ctx)
	}
	return 1, nil
}

// User returns a sample user with the requested identifier.
func (s UserFacadeStub) User(ctx context.Context, id string) (*model.User, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, id)
	}
	u := SampleUser()
	u.ID = id
	return u, nil
}

// HealthFacadeStub reports configured storage health.
type HealthFacadeStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s HealthFacadeStub) HealthCheck(context.Context) error {
	return s.Err
}

// RegistryFacadeStub aggregates facade dependencies for HTTP layer tests.
type RegistryFacadeStub struct {
	UserFacadeStub
	AuthFacadeStub
	HealthFacadeStub
}
