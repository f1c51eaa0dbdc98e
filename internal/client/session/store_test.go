package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shiftnotes/shiftnotes-cli/internal/client/repositories"
	"github.com/shiftnotes/shiftnotes-cli/internal/client/repositories/metadata"
	"github.com/shiftnotes/shiftnotes-cli/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T, passphrase string) (*SQLiteStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "client.db")
	db, err := repositories.InitDatabase(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteStore(db, passphrase), path
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	tok, err := m.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)

	require.NoError(t, m.Save(ctx, "t1"))
	tok, _ = m.Load(ctx)
	assert.Equal(t, "t1", tok)

	require.NoError(t, m.Clear(ctx))
	tok, _ = m.Load(ctx)
	assert.Empty(t, tok)
}

func TestSQLiteStore_RoundTripSealed(t *testing.T) {
	ctx := context.Background()
	s, _ := newSQLiteStore(t, "pass")

	tok, err := s.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, tok)

	require.NoError(t, s.Save(ctx, "abc123token"))

	raw, err := metadata.NewSQLiteRepository(s.db).Get(ctx, metadata.KeyToken)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "abc123token")

	tok, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc123token", tok)
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	s, path := newSQLiteStore(t, "pass")
	require.NoError(t, s.Save(ctx, "persisted"))

	db, err := repositories.InitDatabase(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	tok, err := NewSQLiteStore(db, "pass").Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "persisted", tok)

	_, err = NewSQLiteStore(db, "other").Load(ctx)
	require.ErrorIs(t, err, common.ErrSealedToken)
}

func TestSQLiteStore_ClearKeepsSalt(t *testing.T) {
	ctx := context.Background()
	s, _ := newSQLiteStore(t, "pass")
	require.NoError(t, s.Save(ctx, "t1"))

	repo := metadata.NewSQLiteRepository(s.db)
	salt, err := repo.Get(ctx, metadata.KeyTokenSalt)
	require.NoError(t, err)

	require.NoError(t, s.Clear(ctx))
	tok, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)

	require.NoError(t, s.Save(ctx, "t2"))
	again, err := repo.Get(ctx, metadata.KeyTokenSalt)
	require.NoError(t, err)
	assert.Equal(t, salt, again)
}

func TestSQLiteStore_RejectsEmptyToken(t *testing.T) {
	s, _ := newSQLiteStore(t, "pass")
	require.ErrorIs(t, s.Save(context.Background(), ""), common.ErrInvalidToken)
}
