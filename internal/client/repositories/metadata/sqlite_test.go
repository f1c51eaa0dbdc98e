package metadata

import (
	"context"
	"database/sql"
	"testing"

	"github.com/shiftnotes/shiftnotes-cli/internal/common"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSetAndGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyToken, []byte{0x01, 0x02}))

	v, err := r.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02}, v)
}

func TestGet_Missing_ReturnsNotFound(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, err := r.Get(context.Background(), "absent")
	require.ErrorIs(t, err, common.ErrorNotFound)
	require.Nil(t, v)
}

func TestSet_Upsert(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyToken, []byte("old")))
	require.NoError(t, r.Set(ctx, KeyToken, []byte("new")))

	v, err := r.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Equal(t, []byte("new"), v)
}

func TestDelete_ManyKeys_Idempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyToken, []byte{1}))
	require.NoError(t, r.Set(ctx, KeyTokenNonce, []byte{2}))
	require.NoError(t, r.Set(ctx, KeyTokenSalt, []byte{3}))

	require.NoError(t, r.Delete(ctx, KeyToken, KeyTokenNonce))

	_, err := r.Get(ctx, KeyToken)
	require.ErrorIs(t, err, common.ErrorNotFound)
	_, err = r.Get(ctx, KeyTokenNonce)
	require.ErrorIs(t, err, common.ErrorNotFound)

	salt, err := r.Get(ctx, KeyTokenSalt)
	require.NoError(t, err)
	require.Equal(t, []byte{3}, salt)

	require.NoError(t, r.Delete(ctx, KeyToken))
	require.NoError(t, r.Delete(ctx))
}

func TestErrorsAreWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	require.NoError(t, db.Close())

	_, err := r.Get(ctx, "k")
	require.ErrorContains(t, err, "failed to get metadata[k]")

	err = r.Set(ctx, "k", []byte("v"))
	require.ErrorContains(t, err, "failed to set metadata[k]")

	err = r.Delete(ctx, "k")
	require.ErrorContains(t, err, "failed to delete metadata")
}
