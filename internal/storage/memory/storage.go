package memory

import (
	"context"
	"sync"

	domainErrors "github.com/polkiloo/usersystem/internal/domain/errors"
	"github.com/polkiloo/usersystem/internal/domain/model"
	"github.com/polkiloo/usersystem/internal/domain/repository"
)

// Storage keeps users in process memory in registration order.
type Storage struct {
	mu      sync.RWMutex
	users   []*model.User
	byEmail map[string]int
	byID    map[string]int
}

type userRepository struct {
	storage *Storage
}

// New creates an empty in-memory storage.
func New() *Storage {
	return &Storage{
		byEmail: make(map[string]int),
		byID:    make(map[string]int),
	}
}

// Users returns the user repository backed by this storage.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

// HealthCheck always succeeds for memory storage.
func (s *Storage) HealthCheck(context.Context) error {
	return nil
}

// Close is a no-op.
func (s *Storage) Close() {}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[user.Email]; exists {
		return domainErrors.ErrAlreadyExists
	}
	stored := *user
	s.users = append(s.users, &stored)
	idx := len(s.users) - 1
	s.byEmail[stored.Email] = idx
	if stored.ID != "" {
		s.byID[stored.ID] = idx
	}
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byEmail[email]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	u := *s.users[idx]
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	u := *s.users[idx]
	return &u, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *userRepository) Count(ctx context.Context) (int, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), nil
}
