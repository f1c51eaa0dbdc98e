package session

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/shiftnotes/shiftnotes-cli/internal/client/repositories/metadata"
	"github.com/shiftnotes/shiftnotes-cli/internal/common"
	"github.com/shiftnotes/shiftnotes-cli/internal/cryptox"
	"github.com/shiftnotes/shiftnotes-cli/internal/dbx"
)

// TokenStore persists the session token between runs. Load returns an empty
// token and no error when nothing is stored.
type TokenStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// MemoryStore keeps the token for the life of the process only.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *MemoryStore) Save(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

// SQLiteStore keeps the token in the local metadata table, sealed with
// AES-GCM under a key derived from passphrase. The salt is generated once and
// kept across logouts.
type SQLiteStore struct {
	db         *sql.DB
	passphrase []byte

	mu      sync.Mutex
	salt    []byte
	derived []byte
}

func NewSQLiteStore(db *sql.DB, passphrase string) *SQLiteStore {
	return &SQLiteStore{db: db, passphrase: []byte(passphrase)}
}

func (s *SQLiteStore) key(salt []byte) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.derived != nil && bytes.Equal(s.salt, salt) {
		return s.derived
	}
	s.salt = append([]byte(nil), salt...)
	s.derived = cryptox.DeriveKey(s.passphrase, salt)
	return s.derived
}

func (s *SQLiteStore) Load(ctx context.Context) (string, error) {
	repo := metadata.NewSQLiteRepository(s.db)

	values := make(map[string][]byte, 3)
	for _, k := range []string{metadata.KeyToken, metadata.KeyTokenNonce, metadata.KeyTokenSalt} {
		v, err := repo.Get(ctx, k)
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil
		}
		if err != nil {
			return "", fmt.Errorf("load token: %w", err)
		}
		values[k] = v
	}

	plain, err := cryptox.Open(values[metadata.KeyToken], values[metadata.KeyTokenNonce], s.key(values[metadata.KeyTokenSalt]))
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrSealedToken, err)
	}
	defer common.WipeByteArray(plain)
	return string(plain), nil
}

func (s *SQLiteStore) Save(ctx context.Context, token string) error {
	if token == "" {
		return common.ErrInvalidToken
	}

	salt, err := metadata.NewSQLiteRepository(s.db).Get(ctx, metadata.KeyTokenSalt)
	if errors.Is(err, common.ErrorNotFound) {
		salt = common.GenerateRandByteArray(cryptox.SaltSize)
	} else if err != nil {
		return fmt.Errorf("save token: %w", err)
	}

	sealed, nonce, err := cryptox.Seal([]byte(token), s.key(salt))
	if err != nil {
		return fmt.Errorf("seal token: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, metadata.KeyTokenSalt, salt); err != nil {
			return err
		}
		if err := repo.Set(ctx, metadata.KeyTokenNonce, nonce); err != nil {
			return err
		}
		return repo.Set(ctx, metadata.KeyToken, sealed)
	})
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	return metadata.NewSQLiteRepository(s.db).Delete(ctx, metadata.KeyToken, metadata.KeyTokenNonce)
}
