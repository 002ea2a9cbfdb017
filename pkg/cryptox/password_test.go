package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$2a$10$"), "hash should encode cost 10, got %q", hash)
	require.NotContains(t, hash, "hunter22")

	t.Run("same password hashes differently", func(t *testing.T) {
		other, err := HashPassword("hunter22")
		require.NoError(t, err)
		require.NotEqual(t, hash, other)
	})
}

func TestVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct horse")
	require.NoError(t, err)

	t.Run("matching password verifies", func(t *testing.T) {
		require.NoError(t, VerifyPassword("correct horse", hash))
	})

	t.Run("wrong password fails", func(t *testing.T) {
		require.Error(t, VerifyPassword("battery staple", hash))
	})

	t.Run("garbage hash fails", func(t *testing.T) {
		require.Error(t, VerifyPassword("correct horse", "not-a-hash"))
	})
}
