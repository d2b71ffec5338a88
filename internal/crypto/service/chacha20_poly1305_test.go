package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/envseal/internal/crypto/domain"
)

func TestNewChaCha20Poly1305(t *testing.T) {
	t.Run("accepts 32-byte key", func(t *testing.T) {
		cipher, err := NewChaCha20Poly1305(testKey(t))
		require.NoError(t, err)
		assert.NotNil(t, cipher)
	})

	t.Run("rejects wrong key size", func(t *testing.T) {
		_, err := NewChaCha20Poly1305(make([]byte, 16))
		assert.Error(t, err)
	})
}

func TestChaCha20Poly1305Cipher_EncryptDecrypt(t *testing.T) {
	cipher, err := NewChaCha20Poly1305(testKey(t))
	require.NoError(t, err)

	t.Run("round-trip", func(t *testing.T) {
		nonce := testNonce(t)
		plaintext := []byte("secret message")

		ciphertext, err := cipher.Encrypt(plaintext, nonce, nil)
		require.NoError(t, err)

		decrypted, err := cipher.Decrypt(ciphertext, nonce, nil)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	})

	t.Run("tampered ciphertext fails authentication", func(t *testing.T) {
		nonce := testNonce(t)

		ciphertext, err := cipher.Encrypt([]byte("payload"), nonce, nil)
		require.NoError(t, err)

		ciphertext[0] ^= 0x01
		_, err = cipher.Decrypt(ciphertext, nonce, nil)
		assert.ErrorIs(t, err, cryptoDomain.ErrAuthentication)
	})

	t.Run("rejects wrong nonce sizes", func(t *testing.T) {
		_, err := cipher.Encrypt([]byte("payload"), make([]byte, 8), nil)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidNonceSize)

		_, err = cipher.Decrypt([]byte("ciphertext"), make([]byte, 8), nil)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidNonceSize)
	})
}
