package service

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/envseal/internal/crypto/domain"
)

func testKey(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, cryptoDomain.KeySize)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

func testNonce(t *testing.T) []byte {
	t.Helper()
	nonce := make([]byte, cryptoDomain.NonceSize)
	_, err := rand.Read(nonce)
	require.NoError(t, err)
	return nonce
}

func TestNewAESGCM(t *testing.T) {
	t.Run("accepts 32-byte key", func(t *testing.T) {
		cipher, err := NewAESGCM(testKey(t))
		require.NoError(t, err)
		assert.NotNil(t, cipher)
	})

	t.Run("rejects wrong key sizes", func(t *testing.T) {
		for _, size := range []int{0, 16, 24, 31, 33, 64} {
			_, err := NewAESGCM(make([]byte, size))
			assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeySize)
		}
	})
}

func TestAESGCMCipher_EncryptDecrypt(t *testing.T) {
	cipher, err := NewAESGCM(testKey(t))
	require.NoError(t, err)

	t.Run("round-trip", func(t *testing.T) {
		nonce := testNonce(t)
		plaintext := []byte("secret message")

		ciphertext, err := cipher.Encrypt(plaintext, nonce, nil)
		require.NoError(t, err)
		assert.NotEqual(t, plaintext, ciphertext)
		// GCM appends a 16-byte tag.
		assert.Len(t, ciphertext, len(plaintext)+16)

		decrypted, err := cipher.Decrypt(ciphertext, nonce, nil)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	})

	t.Run("round-trip with aad", func(t *testing.T) {
		nonce := testNonce(t)
		aad := []byte("context")

		ciphertext, err := cipher.Encrypt([]byte("payload"), nonce, aad)
		require.NoError(t, err)

		decrypted, err := cipher.Decrypt(ciphertext, nonce, aad)
		require.NoError(t, err)
		assert.Equal(t, []byte("payload"), decrypted)

		_, err = cipher.Decrypt(ciphertext, nonce, []byte("other context"))
		assert.ErrorIs(t, err, cryptoDomain.ErrAuthentication)
	})

	t.Run("tampered ciphertext fails authentication", func(t *testing.T) {
		nonce := testNonce(t)

		ciphertext, err := cipher.Encrypt([]byte("payload"), nonce, nil)
		require.NoError(t, err)

		for i := range ciphertext {
			tampered := append([]byte(nil), ciphertext...)
			tampered[i] ^= 0x01

			_, err := cipher.Decrypt(tampered, nonce, nil)
			assert.ErrorIs(t, err, cryptoDomain.ErrAuthentication)
		}
	})

	t.Run("wrong key fails authentication", func(t *testing.T) {
		nonce := testNonce(t)

		ciphertext, err := cipher.Encrypt([]byte("payload"), nonce, nil)
		require.NoError(t, err)

		other, err := NewAESGCM(testKey(t))
		require.NoError(t, err)

		_, err = other.Decrypt(ciphertext, nonce, nil)
		assert.ErrorIs(t, err, cryptoDomain.ErrAuthentication)
	})

	t.Run("rejects wrong nonce sizes", func(t *testing.T) {
		for _, size := range []int{0, 8, 11, 13, 16} {
			_, err := cipher.Encrypt([]byte("payload"), make([]byte, size), nil)
			assert.ErrorIs(t, err, cryptoDomain.ErrInvalidNonceSize)

			_, err = cipher.Decrypt([]byte("ciphertext"), make([]byte, size), nil)
			assert.ErrorIs(t, err, cryptoDomain.ErrInvalidNonceSize)
		}
	})
}
