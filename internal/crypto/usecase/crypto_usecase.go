package usecase

import (
	"context"
	"fmt"

	validation "github.com/jellydator/validation"
	"golang.org/x/sync/errgroup"

	cryptoDomain "github.com/allisson/envseal/internal/crypto/domain"
	cryptoService "github.com/allisson/envseal/internal/crypto/service"
)

// defaultBatchLimit bounds batch concurrency when no limit is configured.
// Each in-flight item allocates its own Argon2 working set, so the bound is
// a memory bound, not just a CPU one.
const defaultBatchLimit = 3

// cryptoUseCase implements CryptoUseCase.
//
// The pipeline composes the crypto services through their interfaces: salts
// and nonces come from the RandomSource, the per-operation key pair from the
// KeyDeriver, the payload cipher from the AEADManager for the configured
// algorithm, and the second-layer envelope MAC from the IntegrityMac. No
// state is shared or mutated across calls, so a single instance is safe for
// concurrent use.
type cryptoUseCase struct {
	random      cryptoService.RandomSource
	deriver     cryptoService.KeyDeriver
	aeadManager cryptoService.AEADManager
	mac         cryptoService.IntegrityMac
	algorithm   cryptoDomain.Algorithm
	batchLimit  int
}

// NewCryptoUseCase creates a CryptoUseCase using the given services.
//
// The algorithm selects the AEAD cipher for both encryption and decryption;
// the envelope format does not record it, so a deployment must decrypt with
// the same algorithm it encrypted with. batchLimit bounds the number of
// concurrently processed batch items; values < 1 fall back to the default.
func NewCryptoUseCase(
	random cryptoService.RandomSource,
	deriver cryptoService.KeyDeriver,
	aeadManager cryptoService.AEADManager,
	mac cryptoService.IntegrityMac,
	algorithm cryptoDomain.Algorithm,
	batchLimit int,
) CryptoUseCase {
	if batchLimit < 1 {
		batchLimit = defaultBatchLimit
	}
	return &cryptoUseCase{
		random:      random,
		deriver:     deriver,
		aeadManager: aeadManager,
		mac:         mac,
		algorithm:   algorithm,
		batchLimit:  batchLimit,
	}
}

// validatePassphrase rejects empty or too-short passphrases before any
// cryptographic work happens.
func validatePassphrase(passphrase string) error {
	err := validation.Validate(passphrase,
		validation.Required,
		validation.RuneLength(cryptoDomain.MinPassphraseLength, 0),
	)
	if err != nil {
		return cryptoDomain.ErrPassphraseTooShort
	}
	return nil
}

// Encrypt validates the inputs, generates a fresh salt and nonce, derives the
// per-operation key pair, AEAD-encrypts the plaintext, computes the envelope
// MAC over salt||nonce||ciphertext, and serializes the result.
func (c *cryptoUseCase) Encrypt(ctx context.Context, plaintext, passphrase string) (string, error) {
	if err := validatePassphrase(passphrase); err != nil {
		return "", err
	}
	if err := validation.Validate(plaintext, validation.Required); err != nil {
		return "", cryptoDomain.ErrEmptyPlaintext
	}

	salt, err := c.random.Generate(cryptoDomain.SaltSize)
	if err != nil {
		return "", err
	}
	nonce, err := c.random.Generate(cryptoDomain.NonceSize)
	if err != nil {
		return "", err
	}

	// Key derivation is the expensive step; honor cancellation before it.
	if err := ctx.Err(); err != nil {
		return "", err
	}

	keys, err := c.deriver.Derive([]byte(passphrase), salt)
	if err != nil {
		return "", err
	}
	defer keys.Destroy()

	aead, err := c.aeadManager.CreateCipher(keys.EncryptionKey, c.algorithm)
	if err != nil {
		return "", err
	}

	ciphertext, err := aead.Encrypt([]byte(plaintext), nonce, nil)
	if err != nil {
		return "", err
	}

	env := cryptoDomain.Envelope{Salt: salt, Nonce: nonce, Ciphertext: ciphertext}
	env.Mac = c.mac.Compute(keys.MacKey, env.MacInput())

	return env.String(), nil
}

// Decrypt validates the passphrase, parses the envelope (a cheap structural
// check that runs before any expensive cryptography), derives the key pair
// from the envelope's salt, verifies the envelope MAC, and only then
// AEAD-decrypts.
//
// Verifying the MAC before decryption is a fail-closed policy: unauthenticated
// ciphertext is never handed to the decryptor. MAC mismatch and AEAD tag
// failure both surface as the same ErrAuthentication so callers cannot
// distinguish a wrong key from tampered data.
func (c *cryptoUseCase) Decrypt(ctx context.Context, envelope, passphrase string) (string, error) {
	if err := validatePassphrase(passphrase); err != nil {
		return "", err
	}
	if err := validation.Validate(envelope, validation.Required); err != nil {
		return "", cryptoDomain.ErrEmptyEnvelope
	}

	env, err := cryptoDomain.NewEnvelope(envelope)
	if err != nil {
		return "", err
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	keys, err := c.deriver.Derive([]byte(passphrase), env.Salt)
	if err != nil {
		return "", err
	}
	defer keys.Destroy()

	if err := c.mac.Verify(keys.MacKey, env.MacInput(), env.Mac); err != nil {
		return "", err
	}

	aead, err := c.aeadManager.CreateCipher(keys.EncryptionKey, c.algorithm)
	if err != nil {
		return "", err
	}

	plaintext, err := aead.Decrypt(env.Ciphertext, env.Nonce, nil)
	if err != nil {
		return "", cryptoDomain.ErrAuthentication
	}

	return string(plaintext), nil
}

// EncryptMultiple encrypts each plaintext concurrently, preserving order.
func (c *cryptoUseCase) EncryptMultiple(ctx context.Context, plaintexts []string, passphrase string) ([]string, error) {
	return c.runBatch(ctx, plaintexts, passphrase, c.Encrypt)
}

// DecryptMultiple decrypts each envelope concurrently, preserving order.
func (c *cryptoUseCase) DecryptMultiple(ctx context.Context, envelopes []string, passphrase string) ([]string, error) {
	return c.runBatch(ctx, envelopes, passphrase, c.Decrypt)
}

// runBatch applies op to every item with bounded concurrency. Items are
// independent: each owns its own ephemeral key pair and there is no shared
// mutable state beyond the result slot written per index. On the first
// failure the group context is cancelled, remaining items abort, and no
// partial result list is returned.
func (c *cryptoUseCase) runBatch(
	ctx context.Context,
	items []string,
	passphrase string,
	op func(ctx context.Context, item, passphrase string) (string, error),
) ([]string, error) {
	results := make([]string, len(items))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.batchLimit)

	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			out, err := op(ctx, item, passphrase)
			if err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
			results[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
