package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRepo creates repositories backed by an in-memory database
func setupTestRepo(t *testing.T) *Repositories {
	t.Helper()

	repos, err := NewRepositories(context.Background(), Config{
		DSN:          ":memory:",
		MaxOpenConns: 1, // in-memory database lives in a single connection
		MaxIdleConns: 1,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, repos.Close())
	})
	return repos
}

func TestNewRepositories(t *testing.T) {
	repos := setupTestRepo(t)

	assert.NotNil(t, repos.News)
	assert.NotNil(t, repos.Digest)
	assert.NoError(t, repos.Ping(context.Background()))

	// schema applied
	var count int
	err := repos.DB.Get(&count, "SELECT count(*) FROM news_items")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	err = repos.DB.Get(&count, "SELECT count(*) FROM digests")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestIsLockError(t *testing.T) {
	assert.False(t, isLockError(nil))
	assert.False(t, isLockError(assert.AnError))
	assert.True(t, isLockError(errLocked{}))
}

type errLocked struct{}

func (errLocked) Error() string { return "database is locked (5) (SQLITE_BUSY)" }
