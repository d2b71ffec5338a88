// Package domain defines the envelope encryption domain model: the envelope
// text format, derived key material, and the typed error taxonomy.
package domain

import "fmt"

// Algorithm represents the AEAD algorithm used to encrypt the envelope payload.
//
// All supported algorithms provide Authenticated Encryption with Associated Data
// (AEAD), ensuring both confidentiality and authenticity of encrypted data.
//
// Algorithm selection guidelines:
//   - Use AESGCM on modern CPUs with AES-NI hardware acceleration
//   - Use ChaCha20 on systems without AES-NI
//   - Both provide equivalent 256-bit security when used correctly
type Algorithm string

const (
	// AESGCM represents the AES-256-GCM authenticated encryption algorithm.
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 represents the ChaCha20-Poly1305 authenticated encryption algorithm.
	ChaCha20 Algorithm = "chacha20-poly1305"
)

// ParseAlgorithm converts a configuration string to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(name) {
	case AESGCM:
		return AESGCM, nil
	case ChaCha20:
		return ChaCha20, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, name)
	}
}

const (
	// EnvelopePrefix is the fixed version tag that starts every serialized envelope.
	EnvelopePrefix = "ENC2:"

	// SaltSize is the size in bytes of the key derivation salt, generated fresh
	// per encryption and stored in plain form inside the envelope.
	SaltSize = 32

	// NonceSize is the size in bytes of the AEAD nonce (96 bits). A (key, nonce)
	// pair must be used for at most one encryption ever.
	NonceSize = 12

	// KeySize is the size in bytes of the encryption key and the MAC key (256 bits).
	KeySize = 32

	// MinPassphraseLength is the minimum accepted passphrase length in characters.
	MinPassphraseLength = 16
)
