package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZero(t *testing.T) {
	t.Run("zeroes all bytes", func(t *testing.T) {
		b := []byte{1, 2, 3, 4, 5}
		Zero(b)
		assert.Equal(t, []byte{0, 0, 0, 0, 0}, b)
	})

	t.Run("handles nil slice", func(t *testing.T) {
		assert.NotPanics(t, func() { Zero(nil) })
	})

	t.Run("handles empty slice", func(t *testing.T) {
		assert.NotPanics(t, func() { Zero([]byte{}) })
	})
}

func TestDerivedKeyPair_Destroy(t *testing.T) {
	encKey := []byte{1, 2, 3}
	macKey := []byte{4, 5, 6}
	pair := DerivedKeyPair{EncryptionKey: encKey, MacKey: macKey}

	pair.Destroy()

	assert.Nil(t, pair.EncryptionKey)
	assert.Nil(t, pair.MacKey)
	assert.Equal(t, []byte{0, 0, 0}, encKey)
	assert.Equal(t, []byte{0, 0, 0}, macKey)

	assert.NotPanics(t, func() { pair.Destroy() })
}
