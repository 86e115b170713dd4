package credentials

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/gophtickets/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestSQLite(t *testing.T, path string) *SQLiteRepository {
	t.Helper()
	repo, db, err := OpenSQLite(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repo
}

func TestSQLiteRepository_Contract(t *testing.T) {
	runContract(t, func(t *testing.T) Repository {
		return openTestSQLite(t, filepath.Join(t.TempDir(), "tickets.db"))
	})
}

func TestSQLiteRepository_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tickets.db")

	repo, db, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, SetTokens(ctx, repo, "A1", "R1"))
	require.NoError(t, db.Close())

	reopened := openTestSQLite(t, path)
	v, err := reopened.Get(ctx, common.RefreshTokenKey)
	require.NoError(t, err)
	assert.Equal(t, "R1", v)
}

func TestSQLiteRepository_ErrorsAreWrapped(t *testing.T) {
	ctx := context.Background()
	repo, db, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "tickets.db"))
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = repo.Get(ctx, "k")
	require.ErrorContains(t, err, "failed to get credential[k]")

	err = repo.Set(ctx, "k", "v")
	require.ErrorContains(t, err, "failed to set credential[k]")

	err = repo.SetMany(ctx, map[string]string{"k": "v"})
	require.ErrorContains(t, err, "failed to set credentials")

	err = repo.Delete(ctx, "k")
	require.ErrorContains(t, err, "failed to delete credential[k]")

	err = repo.Clear(ctx)
	require.ErrorContains(t, err, "failed to clear credentials")
}
