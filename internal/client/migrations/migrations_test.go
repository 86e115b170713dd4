package migrations

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestUp_CreatesCredentialsTableAndIsRepeatable(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	require.NoError(t, Up(ctx, db))
	require.NoError(t, Up(ctx, db))

	_, err = db.Exec(`INSERT INTO credentials(key, value) VALUES ('access_token', 'A1')`)
	require.NoError(t, err)
}
