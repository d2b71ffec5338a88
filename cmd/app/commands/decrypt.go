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

// RunDecrypt decrypts an envelope with the passphrase configured for the given
// deployment stage and writes the recovered plaintext to the output writer.
//
// When envelope is "-", the envelope is read from the input reader instead.
func RunDecrypt(
	ctx context.Context,
	useCase cryptoUseCase.CryptoUseCase,
	ks *keystore.Keystore,
	logger *slog.Logger,
	ioTuple IOTuple,
	stage, envelope string,
) error {
	passphrase, ok := ks.Passphrase(stage)
	if !ok {
		return fmt.Errorf("unknown stage: %s", stage)
	}

	if envelope == "-" {
		data, err := io.ReadAll(ioTuple.Reader)
		if err != nil {
			return fmt.Errorf("failed to read envelope from input: %w", err)
		}
		envelope = strings.TrimSpace(string(data))
	}

	logger.Info("decrypting value", slog.String("stage", stage))

	plaintext, err := useCase.Decrypt(ctx, envelope, passphrase)
	if err != nil {
		return fmt.Errorf("failed to decrypt: %w", err)
	}

	fmt.Fprintln(ioTuple.Writer, plaintext)

	return nil
}
