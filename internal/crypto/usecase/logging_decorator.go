package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/allisson/envseal/internal/crypto/domain"
	apperrors "github.com/allisson/envseal/internal/errors"
)

// cryptoUseCaseWithLogging decorates CryptoUseCase with structured logging.
//
// The decorator is the sanitization boundary: it logs the operation id,
// duration, and the error KIND only. Plaintexts, passphrases, envelope
// contents, and error messages (which may embed envelope fragments) never
// reach the log output.
type cryptoUseCaseWithLogging struct {
	next   CryptoUseCase
	logger *slog.Logger
}

// NewCryptoUseCaseWithLogging wraps a CryptoUseCase with structured logging.
func NewCryptoUseCaseWithLogging(useCase CryptoUseCase, logger *slog.Logger) CryptoUseCase {
	return &cryptoUseCaseWithLogging{
		next:   useCase,
		logger: logger,
	}
}

// errorKind maps an error to its taxonomy label for logging.
func errorKind(err error) string {
	switch {
	case apperrors.Is(err, cryptoDomain.ErrAuthentication):
		return "authentication"
	case apperrors.Is(err, cryptoDomain.ErrFormat):
		return "format"
	case apperrors.Is(err, cryptoDomain.ErrKeyDerivation):
		return "key_derivation"
	case apperrors.Is(err, cryptoDomain.ErrValidation):
		return "validation"
	case apperrors.Is(err, context.Canceled), apperrors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "internal"
	}
}

// log emits one completion record for an operation, sanitized.
func (c *cryptoUseCaseWithLogging) log(operation string, start time.Time, itemCount int, err error) {
	attrs := []any{
		slog.String("operation_id", uuid.Must(uuid.NewV7()).String()),
		slog.String("operation", operation),
		slog.Duration("duration", time.Since(start)),
	}
	if itemCount >= 0 {
		attrs = append(attrs, slog.Int("item_count", itemCount))
	}

	if err != nil {
		attrs = append(attrs, slog.String("error_kind", errorKind(err)))
		c.logger.Error("crypto operation failed", attrs...)
		return
	}
	c.logger.Info("crypto operation completed", attrs...)
}

// Encrypt logs single encryption operations.
func (c *cryptoUseCaseWithLogging) Encrypt(ctx context.Context, plaintext, passphrase string) (string, error) {
	start := time.Now()
	envelope, err := c.next.Encrypt(ctx, plaintext, passphrase)
	c.log("encrypt", start, -1, err)
	return envelope, err
}

// Decrypt logs single decryption operations.
func (c *cryptoUseCaseWithLogging) Decrypt(ctx context.Context, envelope, passphrase string) (string, error) {
	start := time.Now()
	plaintext, err := c.next.Decrypt(ctx, envelope, passphrase)
	c.log("decrypt", start, -1, err)
	return plaintext, err
}

// EncryptMultiple logs batch encryption operations with the item count.
func (c *cryptoUseCaseWithLogging) EncryptMultiple(ctx context.Context, plaintexts []string, passphrase string) ([]string, error) {
	start := time.Now()
	envelopes, err := c.next.EncryptMultiple(ctx, plaintexts, passphrase)
	c.log("encrypt_multiple", start, len(plaintexts), err)
	return envelopes, err
}

// DecryptMultiple logs batch decryption operations with the item count.
func (c *cryptoUseCaseWithLogging) DecryptMultiple(ctx context.Context, envelopes []string, passphrase string) ([]string, error) {
	start := time.Now()
	plaintexts, err := c.next.DecryptMultiple(ctx, envelopes, passphrase)
	c.log("decrypt_multiple", start, len(envelopes), err)
	return plaintexts, err
}
