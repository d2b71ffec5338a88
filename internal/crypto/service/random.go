package service

import (
	"crypto/rand"

	apperrors "github.com/allisson/envseal/internal/errors"
)

// CryptoRandSource implements RandomSource on top of crypto/rand.
//
// The instance is stateless and safe for concurrent use from multiple
// goroutines.
type CryptoRandSource struct{}

// NewCryptoRandSource creates a new CryptoRandSource.
func NewCryptoRandSource() *CryptoRandSource {
	return &CryptoRandSource{}
}

// Generate returns exactly length bytes read from the system CSPRNG.
// A read failure means the generator is unavailable and is surfaced as a
// fatal internal error; it is never retried.
func (s *CryptoRandSource) Generate(length int) ([]byte, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, "system random source unavailable: "+err.Error())
	}
	return buf, nil
}
