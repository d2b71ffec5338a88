package domain

// DerivedKeyPair holds the two independent subkeys derived from a passphrase
// and a salt: one for AEAD encryption and one for the envelope integrity MAC.
//
// A pair is computed fresh for every single encrypt/decrypt call, is owned
// exclusively by the operation that computed it, and must be destroyed with
// Destroy as soon as the operation finishes. It is never cached or logged.
type DerivedKeyPair struct {
	// EncryptionKey is the 32-byte AEAD encryption key.
	EncryptionKey []byte
	// MacKey is the 32-byte HMAC key for the envelope integrity MAC.
	MacKey []byte
}

// Destroy zeroes both subkeys and drops the references. The pair must not be
// used after Destroy returns. Safe to call multiple times.
func (k *DerivedKeyPair) Destroy() {
	Zero(k.EncryptionKey)
	Zero(k.MacKey)
	k.EncryptionKey = nil
	k.MacKey = nil
}
