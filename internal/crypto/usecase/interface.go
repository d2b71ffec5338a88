// Package usecase implements the envelope encryption pipeline: validation,
// salt/nonce generation, key derivation, AEAD encryption, and the envelope
// integrity MAC, orchestrated into encrypt/decrypt operations plus
// order-preserving batch variants.
package usecase

import (
	"context"
)

// CryptoUseCase defines the public envelope encryption operations.
//
// Every operation is a single linear pipeline with no intermediate persisted
// state: it either completes atomically or fails entirely with one of the
// typed error kinds from the crypto domain (validation, format, key
// derivation, authentication). Cryptographic failures are terminal and are
// never retried internally.
type CryptoUseCase interface {
	// Encrypt turns plaintext and a passphrase into a self-describing,
	// tamper-evident envelope string. Each call uses a fresh random salt and
	// nonce, so encrypting the same plaintext twice yields different envelopes.
	Encrypt(ctx context.Context, plaintext, passphrase string) (string, error)

	// Decrypt reverses Encrypt given the envelope text and the original
	// passphrase. Structural validation runs before any key derivation, and
	// the envelope MAC is verified before AEAD decryption is attempted.
	Decrypt(ctx context.Context, envelope, passphrase string) (string, error)

	// EncryptMultiple encrypts each plaintext with the same passphrase,
	// preserving order. If any item fails the whole batch fails and no
	// partial result is returned.
	EncryptMultiple(ctx context.Context, plaintexts []string, passphrase string) ([]string, error)

	// DecryptMultiple decrypts each envelope with the same passphrase,
	// preserving order, with the same whole-batch failure semantics.
	DecryptMultiple(ctx context.Context, envelopes []string, passphrase string) ([]string, error)
}
