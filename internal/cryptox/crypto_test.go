package cryptox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	passphrase := []byte("secret-passphrase")
	salt := []byte("fixed-salt-value")

	key1 := DeriveKey(passphrase, salt)
	key2 := DeriveKey(passphrase, salt)

	if !bytes.Equal(key1, key2) {
		t.Errorf("expected same result for same inputs, got different")
	}
	if len(key1) != KeySize {
		t.Errorf("expected %d byte key, got %d", KeySize, len(key1))
	}
}

func TestDeriveKey_DifferentSalts(t *testing.T) {
	passphrase := []byte("secret-passphrase")

	key1 := DeriveKey(passphrase, []byte("salt-1"))
	key2 := DeriveKey(passphrase, []byte("salt-2"))

	if bytes.Equal(key1, key2) {
		t.Errorf("expected different results for different salts, got same")
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	key := DeriveKey([]byte("pw"), []byte("salt"))

	ct, nonce, err := Seal([]byte("token-abc"), key)
	require.NoError(t, err)
	require.NotEqual(t, []byte("token-abc"), ct)

	pt, err := Open(ct, nonce, key)
	require.NoError(t, err)
	require.Equal(t, []byte("token-abc"), pt)
}

func TestOpen_WrongKeyFails(t *testing.T) {
	ct, nonce, err := Seal([]byte("token-abc"), DeriveKey([]byte("pw"), []byte("salt")))
	require.NoError(t, err)

	_, err = Open(ct, nonce, DeriveKey([]byte("other"), []byte("salt")))
	require.Error(t, err)
}

func TestSeal_BadKeyLength(t *testing.T) {
	_, _, err := Seal([]byte("x"), []byte("short"))
	require.Error(t, err)
}
