package service

import (
	"fmt"

	"golang.org/x/crypto/argon2"

	cryptoDomain "github.com/allisson/envseal/internal/crypto/domain"
)

// Argon2Params holds the cost parameters for Argon2id key derivation.
//
// The defaults are deliberately expensive to slow offline brute force against
// captured envelopes. The envelope format does not record the parameters, so
// a deployment must keep them stable for as long as envelopes produced under
// them need to stay decryptable.
type Argon2Params struct {
	// MemoryKiB is the memory cost in KiB.
	MemoryKiB uint32
	// Time is the number of passes over memory.
	Time uint32
	// Parallelism is the number of threads used by the hash.
	Parallelism uint8
}

// DefaultArgon2Params returns the production cost parameters:
// 256 MiB memory, 4 iterations, parallelism 3.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		MemoryKiB:   256 * 1024,
		Time:        4,
		Parallelism: 3,
	}
}

// Argon2KeyDeriver implements KeyDeriver using Argon2id.
//
// Each call produces 64 bytes of output, split as the first 32 bytes =
// encryption key and the remaining 32 bytes = MAC key. The two subkeys are
// independent: learning one reveals nothing about the other.
//
// The deriver is stateless and safe for concurrent use, but note that each
// concurrent derivation allocates its own MemoryKiB working set.
type Argon2KeyDeriver struct {
	params Argon2Params
}

// NewArgon2KeyDeriver creates an Argon2KeyDeriver with the given cost
// parameters. Returns ErrKeyDerivation if any parameter is zero.
func NewArgon2KeyDeriver(params Argon2Params) (*Argon2KeyDeriver, error) {
	if params.MemoryKiB == 0 || params.Time == 0 || params.Parallelism == 0 {
		return nil, fmt.Errorf(
			"%w: argon2 parameters must be positive (memory=%d time=%d parallelism=%d)",
			cryptoDomain.ErrKeyDerivation,
			params.MemoryKiB,
			params.Time,
			params.Parallelism,
		)
	}
	return &Argon2KeyDeriver{params: params}, nil
}

// Derive computes the per-operation key pair from (passphrase, salt).
//
// The salt must be exactly 32 bytes; anything else fails with
// ErrInvalidSaltSize before the hash runs. The combined 64-byte output is
// zeroed once the subkeys have been copied out, so only the returned pair
// holds live key material.
func (d *Argon2KeyDeriver) Derive(passphrase, salt []byte) (cryptoDomain.DerivedKeyPair, error) {
	if len(salt) != cryptoDomain.SaltSize {
		return cryptoDomain.DerivedKeyPair{}, fmt.Errorf(
			"%w: got %d bytes",
			cryptoDomain.ErrInvalidSaltSize,
			len(salt),
		)
	}

	derived := argon2.IDKey(passphrase, salt, d.params.Time, d.params.MemoryKiB, d.params.Parallelism, 2*cryptoDomain.KeySize)

	pair := cryptoDomain.DerivedKeyPair{
		EncryptionKey: make([]byte, cryptoDomain.KeySize),
		MacKey:        make([]byte, cryptoDomain.KeySize),
	}
	copy(pair.EncryptionKey, derived[:cryptoDomain.KeySize])
	copy(pair.MacKey, derived[cryptoDomain.KeySize:])
	cryptoDomain.Zero(derived)

	return pair, nil
}
