package usecase

import (
	"context"
	"time"

	"github.com/allisson/envseal/internal/metrics"
)

// cryptoUseCaseWithMetrics decorates CryptoUseCase with metrics instrumentation.
type cryptoUseCaseWithMetrics struct {
	next    CryptoUseCase
	metrics metrics.BusinessMetrics
}

// NewCryptoUseCaseWithMetrics wraps a CryptoUseCase with metrics recording.
func NewCryptoUseCaseWithMetrics(useCase CryptoUseCase, m metrics.BusinessMetrics) CryptoUseCase {
	return &cryptoUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// record emits the operation counter and duration histogram for one call.
func (c *cryptoUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "crypto", operation, status)
	c.metrics.RecordDuration(ctx, "crypto", operation, time.Since(start), status)
}

// Encrypt records metrics for single encryption operations.
func (c *cryptoUseCaseWithMetrics) Encrypt(ctx context.Context, plaintext, passphrase string) (string, error) {
	start := time.Now()
	envelope, err := c.next.Encrypt(ctx, plaintext, passphrase)
	c.record(ctx, "encrypt", start, err)
	return envelope, err
}

// Decrypt records metrics for single decryption operations.
func (c *cryptoUseCaseWithMetrics) Decrypt(ctx context.Context, envelope, passphrase string) (string, error) {
	start := time.Now()
	plaintext, err := c.next.Decrypt(ctx, envelope, passphrase)
	c.record(ctx, "decrypt", start, err)
	return plaintext, err
}

// EncryptMultiple records metrics for batch encryption operations.
func (c *cryptoUseCaseWithMetrics) EncryptMultiple(ctx context.Context, plaintexts []string, passphrase string) ([]string, error) {
	start := time.Now()
	envelopes, err := c.next.EncryptMultiple(ctx, plaintexts, passphrase)
	c.record(ctx, "encrypt_multiple", start, err)
	return envelopes, err
}

// DecryptMultiple records metrics for batch decryption operations.
func (c *cryptoUseCaseWithMetrics) DecryptMultiple(ctx context.Context, envelopes []string, passphrase string) ([]string, error) {
	start := time.Now()
	plaintexts, err := c.next.DecryptMultiple(ctx, envelopes, passphrase)
	c.record(ctx, "decrypt_multiple", start, err)
	return plaintexts, err
}
