package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/usersystem/internal/domain/errors"
	"github.com/polkiloo/usersystem/internal/domain/model"
	"github.com/polkiloo/usersystem/internal/domain/repository"
	pkgAuth "github.com/polkiloo/usersystem/internal/pkg/auth"
)

// UserSystem is the user registry. It validates registrations and keeps
// email addresses unique across stored users.
type UserSystem struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
	logger *slog.Logger

	now   func() time.Time
	newID func() string
}

// NewUserSystem constructs UserSystem.
func NewUserSystem(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy, logger *slog.Logger) *UserSystem {
	return &UserSystem{
		users:  users,
		hasher: hasher,
		tokens: strategy,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// RegisterUser validates input and stores a new user.
// Checks run in a fixed order: email format, password strength, duplicate email.
// The first failing check determines the returned error and nothing is stored.
func (s *UserSystem) RegisterUser(ctx context.Context, name, email, password string) (*model.User, error) {
	candidate := model.NewUser(name, email, password)

	if !candidate.IsValidEmail() {
		return nil, s.reject(ctx, domainErrors.ErrInvalidEmail)
	}
	if !candidate.IsStrongPassword() {
		return nil, s.reject(ctx, domainErrors.ErrWeakPassword)
	}

	_, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, s.reject(ctx, domainErrors.ErrEmailTaken)
	case !errors.Is(err, domainErrors.ErrNotFound):
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	candidate.ID = s.newID()
	candidate.PasswordHash = hash
	candidate.CreatedAt = s.now().UTC()

	if err := s.users.Create(ctx, candidate); err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, s.reject(ctx, domainErrors.ErrEmailTaken)
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "user registered", slog.String("id", candidate.ID))
	return candidate, nil
}

// reject logs only the reason, never the address.
func (s *UserSystem) reject(ctx context.Context, err error) error {
	s.logger.DebugContext(ctx, "registration rejected", slog.String("reason", err.Error()))
	return err
}

// FindUserByEmail returns the user registered with exactly this email,
// or ErrNotFound.
func (s *UserSystem) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.users.GetByEmail(ctx, email)
}

// TotalUsers returns the number of registered users.
func (s *UserSystem) TotalUsers(ctx context.Context) (int, error) {
	return s.users.Count(ctx)
}

// Users lists registered users in registration order.
func (s *UserSystem) Users(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// GetByID fetches user by identifier.
func (s *UserSystem) GetByID(ctx context.Context, id string) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}

// Authenticate validates credentials and returns auth token.
func (s *UserSystem) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := s.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := s.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts user ID from provided token.
func (s *UserSystem) ParseToken(token string) (string, error) {
	if token == "" {
		return "", pkgAuth.ErrInvalidToken
	}
	return s.tokens.ParseToken(token)
}
