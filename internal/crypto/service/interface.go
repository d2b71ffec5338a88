// Package service provides the cryptographic primitives for envelope
// encryption: secure random generation, Argon2id key derivation, AEAD ciphers
// (AES-256-GCM, ChaCha20-Poly1305), and the HMAC integrity layer.
package service

import (
	cryptoDomain "github.com/allisson/envseal/internal/crypto/domain"
)

// RandomSource defines the interface for cryptographically secure random byte
// generation, used for salts, nonces, and generated passphrases.
type RandomSource interface {
	// Generate returns exactly length cryptographically secure random bytes.
	// The only failure mode is generator unavailability, which is fatal.
	Generate(length int) ([]byte, error)
}

// KeyDeriver defines the interface for deriving the per-operation key pair
// from a passphrase and a salt.
type KeyDeriver interface {
	// Derive computes the encryption key and MAC key for one operation.
	// Deterministic: the same (passphrase, salt) always yields the same pair.
	// The caller owns the returned pair and must Destroy it after use.
	Derive(passphrase, salt []byte) (cryptoDomain.DerivedKeyPair, error)
}

// AEAD defines the interface for Authenticated Encryption with Associated Data
// with a caller-supplied nonce. A (key, nonce) pair must be used for at most
// one encryption ever.
type AEAD interface {
	// Encrypt encrypts plaintext under the given 12-byte nonce and optional AAD.
	// The authentication tag is appended to the returned ciphertext.
	Encrypt(plaintext, nonce, aad []byte) ([]byte, error)

	// Decrypt verifies the embedded authentication tag and decrypts ciphertext.
	// It never returns partially-decrypted or unauthenticated plaintext.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}

// AEADManager defines the interface for creating AEAD cipher instances.
type AEADManager interface {
	// CreateCipher creates an AEAD cipher instance for the specified algorithm.
	CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error)
}

// IntegrityMac defines the interface for the second-layer message
// authentication code over the envelope's public fields. This layer guards
// against bugs in how the AEAD tag is applied or transmitted; it is not
// merely redundant with the AEAD's own tag.
type IntegrityMac interface {
	// Compute returns the MAC tag over data under macKey.
	Compute(macKey, data []byte) []byte

	// Verify recomputes the tag over data and compares it to expected in
	// constant time. Returns ErrAuthentication on mismatch without revealing
	// which byte differed.
	Verify(macKey, data, expected []byte) error
}
