package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("something went wrong")
	require.Error(t, err)
	assert.Equal(t, "something went wrong", err.Error())
}

func TestWrap(t *testing.T) {
	t.Run("wraps error with context", func(t *testing.T) {
		err := Wrap(ErrInvalidInput, "passphrase check failed")
		require.Error(t, err)
		assert.Equal(t, "passphrase check failed: invalid input", err.Error())
		assert.True(t, Is(err, ErrInvalidInput))
	})

	t.Run("returns nil for nil error", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "context"))
	})

	t.Run("preserves chain through multiple wraps", func(t *testing.T) {
		inner := Wrap(ErrUnauthorized, "mac mismatch")
		outer := Wrap(inner, "decrypt failed")
		assert.True(t, Is(outer, ErrUnauthorized))
	})
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("outer: %w", ErrInternal)
	assert.True(t, Is(err, ErrInternal))
	assert.False(t, Is(err, ErrInvalidInput))
}

type customError struct {
	code int
}

func (e *customError) Error() string {
	return fmt.Sprintf("custom error %d", e.code)
}

func TestAs(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &customError{code: 42})

	var target *customError
	require.True(t, As(err, &target))
	assert.Equal(t, 42, target.code)
}
