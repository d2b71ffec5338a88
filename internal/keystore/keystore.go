// Package keystore resolves deployment stages to encryption passphrases.
//
// Passphrases are loaded once from the STAGE_PASSPHRASES environment variable
// and held in memory for the lifetime of the process. The keystore carries no
// rotation or persistence logic: it answers "which passphrase does stage X
// use" and nothing else.
package keystore

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	cryptoDomain "github.com/allisson/envseal/internal/crypto/domain"
	apperrors "github.com/allisson/envseal/internal/errors"
)

var (
	// ErrStagePassphrasesNotSet is returned when STAGE_PASSPHRASES is not configured.
	ErrStagePassphrasesNotSet = apperrors.Wrap(apperrors.ErrInvalidInput, "STAGE_PASSPHRASES environment variable is not set")
	// ErrInvalidStagePassphrasesFormat is returned when an entry is not "stage:passphrase".
	ErrInvalidStagePassphrasesFormat = apperrors.Wrap(apperrors.ErrInvalidInput, "STAGE_PASSPHRASES must be a comma-separated list of stage:passphrase entries")
	// ErrDuplicateStage is returned when the same stage appears more than once.
	ErrDuplicateStage = apperrors.Wrap(apperrors.ErrInvalidInput, "duplicate stage in STAGE_PASSPHRASES")
)

// Keystore maps deployment stage names to their encryption passphrases.
//
// Thread safety: the keystore uses sync.Map internally for concurrent access.
type Keystore struct {
	stages sync.Map
}

// Passphrase returns the passphrase configured for the given stage.
// The boolean reports whether the stage is known to the keystore.
func (k *Keystore) Passphrase(stage string) (string, bool) {
	if passphrase, ok := k.stages.Load(stage); ok {
		return passphrase.(string), ok
	}

	return "", false
}

// Close removes all passphrases from the keystore.
//
// Go strings are immutable, so the passphrase bytes themselves cannot be
// wiped. Clearing the map drops the references so the backing memory becomes
// collectable.
func (k *Keystore) Close() {
	k.stages.Range(func(key, _ any) bool {
		k.stages.Delete(key)
		return true
	})
}

// LoadKeystoreFromEnv loads stage passphrases from environment variables.
//
// The STAGE_PASSPHRASES variable holds a comma-separated list of entries in
// the format "stage:passphrase":
//
//	STAGE_PASSPHRASES="dev:local-dev-passphrase-123,prod:k8s-injected-passphrase-456"
//
// Each passphrase must satisfy the same minimum length the encryption
// operations enforce, so a misconfigured stage fails at startup instead of on
// first use.
func LoadKeystoreFromEnv() (*Keystore, error) {
	raw := os.Getenv("STAGE_PASSPHRASES")
	if raw == "" {
		return nil, ErrStagePassphrasesNotSet
	}

	ks := &Keystore{}

	entries := strings.Split(raw, ",")
	for _, entry := range entries {
		p := strings.SplitN(strings.TrimSpace(entry), ":", 2)
		if len(p) != 2 || p[0] == "" {
			ks.Close()
			return nil, fmt.Errorf("%w: %q", ErrInvalidStagePassphrasesFormat, entry)
		}
		stage, passphrase := p[0], p[1]
		if utf8.RuneCountInString(passphrase) < cryptoDomain.MinPassphraseLength {
			ks.Close()
			return nil, fmt.Errorf(
				"%w: stage %s passphrase must be at least %d characters, got %d",
				cryptoDomain.ErrPassphraseTooShort,
				stage,
				cryptoDomain.MinPassphraseLength,
				utf8.RuneCountInString(passphrase),
			)
		}
		if _, loaded := ks.stages.LoadOrStore(stage, passphrase); loaded {
			ks.Close()
			return nil, fmt.Errorf("%w: %s", ErrDuplicateStage, stage)
		}
	}

	return ks, nil
}
