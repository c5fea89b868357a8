package test

import (
	"context"

	domainErrors "github.com/polkiloo/usersystem/internal/domain/errors"
	"github.com/polkiloo/usersystem/internal/domain/model"
	"github.com/polkiloo/usersystem/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users     []*model.User
	Err       error
	CreateErr error
}

// NewUserRepositoryStub constructs an empty stub repository.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{}
}

// Create registers user unless the email exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, user *model.User) error {
	if s.Err != nil {
		return s.Err
	}
	if s.CreateErr != nil {
		return s.CreateErr
	}
	for _, u := range s.Users {
		if u.Email == user.Email {
			return domainErrors.ErrAlreadyExists
		}
	}
	stored := *user
	s.Users = append(s.Users, &stored)
	return nil
}

// GetByEmail returns the first user with matching email or not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, u := range s.Users {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, u := range s.Users {
		if u.ID == id {
			found := *u
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns stored users in insertion order.
func (s *UserRepositoryStub) List(ctx context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.User, 0, len(s.Users))
	for _, u := range s.Users {
		out = append(out, *u)
	}
	return out, nil
}

// Count returns the number of stored users.
func (s *UserRepositoryStub) Count(ctx context.Context) (int, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	return len(s.Users), nil
}

// FactoryStub exposes a repository stub as a storage backend.
type FactoryStub struct {
	Repo      repository.UserRepository
	HealthErr error
	Closed    bool
}

// Users returns the configured repository.
func (f *FactoryStub) Users() repository.UserRepository {
	return f.Repo
}

// HealthCheck returns the configured error.
func (f *FactoryStub) HealthCheck(context.Context) error {
	return f.HealthErr
}

// Close records the call.
func (f *FactoryStub) Close() {
	f.Closed = true
}

var _ repository.UserRepository = (*UserRepositoryStub)(nil)
var _ repository.Factory = (*FactoryStub)(nil)
