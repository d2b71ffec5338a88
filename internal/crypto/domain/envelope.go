package domain

import (
	"encoding/base64"
	"fmt"
	"strings"

	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/envseal/internal/validation"
)

// Envelope is the self-describing container produced by an encryption: the
// public key-derivation salt, the AEAD nonce, the AEAD ciphertext (with its
// embedded authentication tag), and a second-layer HMAC over the three.
//
// It serializes to and parses from the format:
//
//	ENC2:<salt-base64>:<nonce-base64>:<ciphertext-base64>:<mac-base64>
//
// Decrypting an envelope requires only this text and the original passphrase.
type Envelope struct {
	Salt       []byte
	Nonce      []byte
	Ciphertext []byte
	Mac        []byte
}

// envelopeComponents names the four parts after the prefix, in wire order.
var envelopeComponents = [4]string{"salt", "nonce", "ciphertext", "mac"}

// NewEnvelope parses an Envelope from its string representation.
//
// Validation is purely structural and runs in order: (a) the string begins
// with the "ENC2:" prefix; (b) the remainder splits into exactly 4
// colon-delimited parts; (c) no part is empty; (d) every part is valid
// standard base64. All violations found are collected into a single
// *FormatError rather than failing on the first, so a caller gets one
// complete diagnostic. No cryptographic work happens here.
func NewEnvelope(content string) (Envelope, error) {
	var violations []string

	rest, found := strings.CutPrefix(content, EnvelopePrefix)
	if !found {
		violations = append(violations, fmt.Sprintf("missing %q prefix", EnvelopePrefix))
	}

	parts := strings.Split(rest, ":")
	if len(parts) != len(envelopeComponents) {
		violations = append(violations, fmt.Sprintf(
			"expected %d colon-separated parts after prefix, got %d",
			len(envelopeComponents),
			len(parts),
		))
		return Envelope{}, &FormatError{Violations: violations}
	}

	var decoded [4][]byte
	for i, part := range parts {
		if err := validation.Validate(part, validation.Required, customValidation.Base64); err != nil {
			violations = append(violations, fmt.Sprintf("%s: %v", envelopeComponents[i], err))
			continue
		}
		// Validated above, decode cannot fail.
		decoded[i], _ = base64.StdEncoding.DecodeString(part)
	}

	if len(violations) > 0 {
		return Envelope{}, &FormatError{Violations: violations}
	}

	return Envelope{
		Salt:       decoded[0],
		Nonce:      decoded[1],
		Ciphertext: decoded[2],
		Mac:        decoded[3],
	}, nil
}

// String serializes the Envelope to its canonical string representation.
//
// This method provides round-trip serialization with NewEnvelope:
//
//	serialized := envelope.String()
//	parsed, _ := NewEnvelope(serialized)
//	// parsed equals envelope
func (e Envelope) String() string {
	encode := base64.StdEncoding.EncodeToString
	return EnvelopePrefix + strings.Join([]string{
		encode(e.Salt),
		encode(e.Nonce),
		encode(e.Ciphertext),
		encode(e.Mac),
	}, ":")
}

// MacInput returns the byte string the integrity MAC is computed over:
// salt || nonce || ciphertext, in wire order.
func (e Envelope) MacInput() []byte {
	out := make([]byte, 0, len(e.Salt)+len(e.Nonce)+len(e.Ciphertext))
	out = append(out, e.Salt...)
	out = append(out, e.Nonce...)
	out = append(out, e.Ciphertext...)
	return out
}
