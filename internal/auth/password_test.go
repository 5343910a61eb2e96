package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestVerifyPasswordLegacySentinel(t *testing.T) {
	require.NoError(t, VerifyPassword(legacySentinel, legacySentinel))
	require.ErrorIs(t, VerifyPassword(legacySentinel, "wrong"), ErrPasswordMismatch)
	require.ErrorIs(t, VerifyPassword(legacySentinel, ""), ErrPasswordMismatch)
}

func TestVerifyPasswordBcrypt(t *testing.T) {
	hash, err := HashPassword("admin123", bcrypt.MinCost)
	require.NoError(t, err)

	require.NoError(t, VerifyPassword(hash, "admin123"))
	require.ErrorIs(t, VerifyPassword(hash, "admin124"), ErrPasswordMismatch)
}

func TestVerifyPasswordSentinelNeverMatchesBcryptInput(t *testing.T) {
	// A password equal to some other account's bcrypt hash must not pass the
	// sentinel path.
	hash, err := HashPassword("admin123", bcrypt.MinCost)
	require.NoError(t, err)
	require.ErrorIs(t, VerifyPassword(legacySentinel, hash), ErrPasswordMismatch)
}

func TestVerifyPasswordUnknownShape(t *testing.T) {
	// A stored credential that is neither the sentinel nor a bcrypt hash is
	// unverifiable, never compared as plaintext.
	require.ErrorIs(t, VerifyPassword("plaintext-password", "plaintext-password"), ErrPasswordMismatch)
}
