package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	cryptoUseCase "github.com/allisson/envseal/internal/crypto/usecase"
	"github.com/allisson/envseal/internal/keystore"
)

// RunEncrypt encrypts a plaintext with the passphrase configured for the given
// deployment stage and writes the resulting envelope to the output writer.
//
// When plaintext is "-", the plaintext is read from the input reader instead,
// which keeps secret values out of shell history and process listings.
func RunEncrypt(
	ctx context.Context,
	useCase cryptoUseCase.CryptoUseCase,
	ks *keystore.Keystore,
	logger *slog.Logger,
	ioTuple IOTuple,
	stage, plaintext string,
) error {
	passphrase, ok := ks.Passphrase(stage)
	if !ok {
		return fmt.Errorf("unknown stage: %s", stage)
	}

	if plaintext == "-" {
		data, err := io.ReadAll(ioTuple.Reader)
		if err != nil {
			return fmt.Errorf("failed to read plaintext from input: %w", err)
		}
		plaintext = strings.TrimSuffix(string(data), "\n")
	}

	logger.Info("encrypting value", slog.String("stage", stage))

	envelope, err := useCase.Encrypt(ctx, plaintext, passphrase)
	if err != nil {
		return fmt.Errorf("failed to encrypt: %w", err)
	}

	fmt.Fprintln(ioTuple.Writer, envelope)

	return nil
}
