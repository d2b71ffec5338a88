package service

import (
	"crypto/hmac"
	"crypto/sha256"

	cryptoDomain "github.com/allisson/envseal/internal/crypto/domain"
)

// HMACIntegrityService implements IntegrityMac using HMAC-SHA-256.
//
// This is a second, independent authentication layer over the full envelope
// framing (salt and nonce included), computed with a MAC key that is separate
// from the AEAD encryption key. It catches tampering with the public fields
// even if the AEAD tag were mishandled somewhere between serialization and
// decryption.
//
// The service is stateless and safe for concurrent use.
type HMACIntegrityService struct{}

// NewHMACIntegrity creates a new HMACIntegrityService.
func NewHMACIntegrity() *HMACIntegrityService {
	return &HMACIntegrityService{}
}

// Compute returns the 32-byte HMAC-SHA-256 tag over data under macKey.
func (h *HMACIntegrityService) Compute(macKey, data []byte) []byte {
	mac := hmac.New(sha256.New, macKey)
	mac.Write(data)
	return mac.Sum(nil)
}

// Verify recomputes the tag over data and compares it to expected using
// hmac.Equal, which runs in constant time regardless of where a mismatch
// occurs. On mismatch it returns ErrAuthentication with no detail about
// which byte differed.
func (h *HMACIntegrityService) Verify(macKey, data, expected []byte) error {
	computed := h.Compute(macKey, data)
	if !hmac.Equal(computed, expected) {
		return cryptoDomain.ErrAuthentication
	}
	return nil
}
