package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/polkiloo/usersystem/internal/domain/errors"
	"github.com/polkiloo/usersystem/internal/domain/model"
)

func TestUserRepositoryCreateAndLookup(t *testing.T) {
	ctx := context.Background()
	repo := New().Users()

	require.NoError(t, repo.Create(ctx, &model.User{ID: "1", Name: "Original", Email: "same@email.com"}))
	require.NoError(t, repo.Create(ctx, &model.User{ID: "2", Name: "Segundo", Email: "other@email.com"}))

	u, err := repo.GetByEmail(ctx, "same@email.com")
	require.NoError(t, err)
	assert.Equal(t, "Original", u.Name)

	u, err = repo.GetByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "other@email.com", u.Email)

	_, err = repo.GetByEmail(ctx, "SAME@email.com")
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
}

func TestUserRepositoryRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := New().Users()

	require.NoError(t, repo.Create(ctx, &model.User{ID: "1", Name: "João", Email: "joao@email.com"}))
	err := repo.Create(ctx, &model.User{ID: "2", Name: "Outro", Email: "joao@email.com"})
	assert.ErrorIs(t, err, domainErrors.ErrAlreadyExists)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	u, err := repo.GetByEmail(ctx, "joao@email.com")
	require.NoError(t, err)
	assert.Equal(t, "João", u.Name)
}

func TestUserRepositoryListPreservesOrder(t *testing.T) {
	ctx := context.Background()
	repo := New().Users()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &model.User{ID: fmt.Sprint(i), Email: fmt.Sprintf("user%d@User.com", i)}))
	}

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 5)
	for i, u := range users {
		assert.Equal(t, fmt.Sprintf("user%d@User.com", i), u.Email)
	}
}

func TestUserRepositoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := New().Users()

	input := &model.User{ID: "1", Name: "Nome", Email: "a@a.com"}
	require.NoError(t, repo.Create(ctx, input))
	input.Name = "changed"

	u, err := repo.GetByEmail(ctx, "a@a.com")
	require.NoError(t, err)
	assert.Equal(t, "Nome", u.Name)

	u.Name = "mutated"
	again, err := repo.GetByEmail(ctx, "a@a.com")
	require.NoError(t, err)
	assert.Equal(t, "Nome", again.Name)
}

func TestUserRepositoryConcurrentDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := New().Users()

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- repo.Create(ctx, &model.User{ID: fmt.Sprint(i), Email: "race@email.com"})
		}(i)
	}
	wg.Wait()
	close(errs)

	var ok int
	for err := range errs {
		if err == nil {
			ok++
		}
	}
	assert.Equal(t, 1, ok)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStorageHealthAndClose(t *testing.T) {
	s := New()
	assert.NoError(t, s.HealthCheck(context.Background()))
	s.Close()
}
