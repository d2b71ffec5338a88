package domain

import (
	"fmt"
	"strings"

	"github.com/allisson/envseal/internal/errors"
)

// Envelope encryption error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors
// to provide context for cryptographic failures. Every failure surfaces to
// the caller as one of four kinds: validation, format, key derivation, or
// authentication. The core never recovers from or masks any of them.
var (
	// ErrValidation indicates the caller-supplied input failed validation
	// before any cryptographic work was attempted.
	ErrValidation = errors.Wrap(errors.ErrInvalidInput, "validation failed")

	// ErrPassphraseTooShort indicates the passphrase is empty or shorter than
	// the minimum of 16 characters.
	ErrPassphraseTooShort = errors.Wrap(ErrValidation, "passphrase must be at least 16 characters")

	// ErrEmptyPlaintext indicates an empty plaintext was passed to encrypt.
	ErrEmptyPlaintext = errors.Wrap(ErrValidation, "plaintext must not be empty")

	// ErrEmptyEnvelope indicates an empty envelope string was passed to decrypt.
	ErrEmptyEnvelope = errors.Wrap(ErrValidation, "envelope must not be empty")

	// ErrFormat indicates the envelope string is structurally invalid. The
	// concrete *FormatError carries the full list of violations so callers get
	// one complete diagnostic rather than iterative trial-and-error.
	ErrFormat = errors.Wrap(errors.ErrInvalidInput, "invalid envelope format")

	// ErrKeyDerivation indicates key derivation could not run (malformed salt
	// or a failure in the underlying password hash).
	ErrKeyDerivation = errors.Wrap(errors.ErrInvalidInput, "key derivation failed")

	// ErrInvalidSaltSize indicates the key derivation salt is not exactly 32 bytes.
	ErrInvalidSaltSize = errors.Wrap(ErrKeyDerivation, "salt must be exactly 32 bytes")

	// ErrAuthentication indicates an integrity check failed: either the
	// envelope MAC or the AEAD authentication tag did not verify. The two
	// cases are intentionally not distinguished, so an attacker gains no
	// oracle separating "wrong key" from "tampered data".
	ErrAuthentication = errors.Wrap(errors.ErrUnauthorized, "authentication failed")

	// ErrUnsupportedAlgorithm indicates the requested AEAD algorithm is not supported.
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrInvalidKeySize indicates a cryptographic key is not exactly 32 bytes.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")

	// ErrInvalidNonceSize indicates the AEAD nonce is not exactly 12 bytes.
	ErrInvalidNonceSize = errors.Wrap(errors.ErrInvalidInput, "invalid nonce size")
)

// FormatError reports every structural violation found while parsing an
// envelope string. It unwraps to ErrFormat so callers can classify it with
// errors.Is without inspecting the violation list.
type FormatError struct {
	Violations []string
}

// Error returns all violations joined into a single diagnostic message.
func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid envelope format: %s", strings.Join(e.Violations, "; "))
}

// Unwrap returns ErrFormat for classification via errors.Is.
func (e *FormatError) Unwrap() error {
	return ErrFormat
}
