// Package metadata is a tiny key/value store over the local SQLite database.
// The session store keeps the sealed token and its key material here.
package metadata

import (
	"context"
)

// Well-known keys.
const (
	KeyToken      = "session_token"
	KeyTokenNonce = "session_token_nonce"
	KeyTokenSalt  = "session_token_salt"
)

// Repository reads and writes opaque values by key. Get returns
// common.ErrorNotFound when the key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}
