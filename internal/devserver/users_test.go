package devserver

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/insula/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	u := &User{ID: "1", Email: "A@b.com", PasswordHash: []byte("h"), Profile: models.User{ID: "1", FirstName: "Ana"}}
	require.NoError(t, repo.Create(ctx, u))
	assert.ErrorIs(t, repo.Create(ctx, &User{ID: "2", Email: " a@B.com "}), ErrUserExists)

	got, err := repo.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "1", got.ID)

	// Returned copies are detached from the store.
	got.Profile.FirstName = "Mallory"
	again, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", again.Profile.FirstName)

	again.Profile.LastName = "Bell"
	require.NoError(t, repo.Update(ctx, again))
	got, err = repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Bell", got.Profile.LastName)

	require.NoError(t, repo.Delete(ctx, "1"))
	_, err = repo.GetByEmail(ctx, "a@b.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "1"), ErrUserNotFound)
	assert.ErrorIs(t, repo.Update(ctx, again), ErrUserNotFound)

	require.NoError(t, repo.Create(ctx, &User{ID: "3", Email: "a@b.com"}))
}
