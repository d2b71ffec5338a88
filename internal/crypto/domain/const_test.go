package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	t.Run("aes-gcm", func(t *testing.T) {
		alg, err := ParseAlgorithm("aes-gcm")
		require.NoError(t, err)
		assert.Equal(t, AESGCM, alg)
	})

	t.Run("chacha20-poly1305", func(t *testing.T) {
		alg, err := ParseAlgorithm("chacha20-poly1305")
		require.NoError(t, err)
		assert.Equal(t, ChaCha20, alg)
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		_, err := ParseAlgorithm("des")
		assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
	})
}
