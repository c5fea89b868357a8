package repository

import "context"

// Factory describes a storage backend exposing domain repositories.
type Factory interface {
	Users() UserRepository
	HealthCheck(ctx context.Context) error
	Close()
}
