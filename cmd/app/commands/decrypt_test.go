package commands

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/envseal/internal/crypto/domain"
)

func TestRunDecrypt(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("success", func(t *testing.T) {
		ks := testKeystore(t)
		mockUseCase := &MockCryptoUseCase{}
		mockUseCase.On("Decrypt", ctx, "ENC2:a:b:c:d", "0123456789abcdef").Return("hunter2", nil)

		var out bytes.Buffer
		err := RunDecrypt(ctx, mockUseCase, ks, logger, IOTuple{Writer: &out}, "dev", "ENC2:a:b:c:d")
		require.NoError(t, err)
		require.Equal(t, "hunter2\n", out.String())
		mockUseCase.AssertExpectations(t)
	})

	t.Run("reads envelope from input", func(t *testing.T) {
		ks := testKeystore(t)
		mockUseCase := &MockCryptoUseCase{}
		mockUseCase.On("Decrypt", ctx, "ENC2:a:b:c:d", "0123456789abcdef").Return("hunter2", nil)

		var out bytes.Buffer
		ioTuple := IOTuple{Reader: strings.NewReader("ENC2:a:b:c:d\n"), Writer: &out}
		err := RunDecrypt(ctx, mockUseCase, ks, logger, ioTuple, "dev", "-")
		require.NoError(t, err)
		require.Equal(t, "hunter2\n", out.String())
		mockUseCase.AssertExpectations(t)
	})

	t.Run("unknown stage", func(t *testing.T) {
		ks := testKeystore(t)
		mockUseCase := &MockCryptoUseCase{}

		err := RunDecrypt(ctx, mockUseCase, ks, logger, IOTuple{Writer: &bytes.Buffer{}}, "prod", "ENC2:a:b:c:d")
		require.Error(t, err)
		require.Contains(t, err.Error(), "unknown stage")
	})

	t.Run("authentication failure", func(t *testing.T) {
		ks := testKeystore(t)
		mockUseCase := &MockCryptoUseCase{}
		mockUseCase.On("Decrypt", ctx, "ENC2:a:b:c:d", "0123456789abcdef").
			Return("", cryptoDomain.ErrAuthentication)

		err := RunDecrypt(ctx, mockUseCase, ks, logger, IOTuple{Writer: &bytes.Buffer{}}, "dev", "ENC2:a:b:c:d")
		require.Error(t, err)
		require.ErrorIs(t, err, cryptoDomain.ErrAuthentication)
	})
}
