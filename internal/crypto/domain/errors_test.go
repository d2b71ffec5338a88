package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/envseal/internal/errors"
)

func TestErrorTaxonomy(t *testing.T) {
	t.Run("validation errors classify as ErrValidation", func(t *testing.T) {
		assert.ErrorIs(t, ErrPassphraseTooShort, ErrValidation)
		assert.ErrorIs(t, ErrEmptyPlaintext, ErrValidation)
		assert.ErrorIs(t, ErrEmptyEnvelope, ErrValidation)
		assert.ErrorIs(t, ErrValidation, apperrors.ErrInvalidInput)
	})

	t.Run("key derivation errors classify as ErrKeyDerivation", func(t *testing.T) {
		assert.ErrorIs(t, ErrInvalidSaltSize, ErrKeyDerivation)
	})

	t.Run("authentication classifies as unauthorized", func(t *testing.T) {
		assert.ErrorIs(t, ErrAuthentication, apperrors.ErrUnauthorized)
		assert.NotErrorIs(t, ErrAuthentication, apperrors.ErrInvalidInput)
	})

	t.Run("kinds are disjoint", func(t *testing.T) {
		assert.NotErrorIs(t, ErrFormat, ErrValidation)
		assert.NotErrorIs(t, ErrKeyDerivation, ErrValidation)
		assert.NotErrorIs(t, ErrAuthentication, ErrFormat)
	})
}

func TestFormatError(t *testing.T) {
	err := &FormatError{Violations: []string{"salt: cannot be blank", "mac: must be valid base64-encoded data"}}

	assert.ErrorIs(t, err, ErrFormat)
	assert.Contains(t, err.Error(), "salt: cannot be blank")
	assert.Contains(t, err.Error(), "mac: must be valid base64-encoded data")
}
