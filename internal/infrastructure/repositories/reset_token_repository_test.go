package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you/ytstudio/domain"
)

func setupResetTokenRepo(t *testing.T) (domain.ResetTokenRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewResetTokenRepository(client, time.Hour), mr
}

func TestResetTokenRepositoryImpl_StoreAndLookup(t *testing.T) {
	repo, mr := setupResetTokenRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Store(ctx, "abc123", 42))

	userID, err := repo.Lookup(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)

	// Keys are namespaced so they cannot collide with other data.
	assert.True(t, mr.Exists("pwreset:abc123"))
}

func TestResetTokenRepositoryImpl_Lookup_Missing(t *testing.T) {
	repo, _ := setupResetTokenRepo(t)

	_, err := repo.Lookup(context.Background(), "never-stored")
	assert.ErrorIs(t, err, domain.ErrResetTokenNotFound)
}

func TestResetTokenRepositoryImpl_Lookup_Expired(t *testing.T) {
	repo, mr := setupResetTokenRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Store(ctx, "abc123", 42))

	mr.FastForward(2 * time.Hour)

	_, err := repo.Lookup(ctx, "abc123")
	assert.ErrorIs(t, err, domain.ErrResetTokenNotFound)
}

func TestResetTokenRepositoryImpl_Delete(t *testing.T) {
	repo, _ := setupResetTokenRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Store(ctx, "abc123", 42))
	require.NoError(t, repo.Delete(ctx, "abc123"))

	_, err := repo.Lookup(ctx, "abc123")
	assert.ErrorIs(t, err, domain.ErrResetTokenNotFound)

	assert.NoError(t, repo.Delete(ctx, "abc123"))
}
