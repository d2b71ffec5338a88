package commands

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// RunGeneratePassphrase generates a cryptographically secure random passphrase
// suitable for the STAGE_PASSPHRASES environment variable.
//
// The passphrase is 32 random bytes, base64 URL-encoded so it contains no
// colons or commas and can be embedded in a STAGE_PASSPHRASES entry as-is.
func RunGeneratePassphrase(out io.Writer) error {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return fmt.Errorf("failed to generate passphrase: %w", err)
	}

	passphrase := base64.URLEncoding.EncodeToString(raw)

	fmt.Fprintln(out, "# Add the new stage to your STAGE_PASSPHRASES environment variable:")
	fmt.Fprintf(out, "# STAGE_PASSPHRASES=\"<stage>:%s\"\n", passphrase)
	fmt.Fprintln(out, passphrase)

	// Zero out the raw bytes from memory for security
	for i := range raw {
		raw[i] = 0
	}

	return nil
}
