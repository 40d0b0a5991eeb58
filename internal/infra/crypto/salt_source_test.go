package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaltSource_LengthMatchesDigest(t *testing.T) {
	hasher, err := NewHasher(AlgorithmSHA256)
	require.NoError(t, err)
	salts := NewSaltSource(hasher)

	salt, err := salts.NewSalt()
	require.NoError(t, err)
	assert.Len(t, salt, 64)
}

func TestSaltSource_Unpredictable(t *testing.T) {
	hasher, err := NewHasher(AlgorithmSHA256)
	require.NoError(t, err)
	salts := NewSaltSource(hasher)

	seen := make(map[string]struct{})
	for range 100 {
		salt, err := salts.NewSalt()
		require.NoError(t, err)

		_, dup := seen[salt]
		assert.False(t, dup, "salt %s was produced twice", salt)
		seen[salt] = struct{}{}
	}
}
