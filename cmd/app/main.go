// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/envseal/cmd/app/commands"
	"github.com/allisson/envseal/internal/app"
	"github.com/allisson/envseal/internal/config"
)

func main() {
	cmd := &cli.Command{
		Name:    "envseal",
		Usage:   "Passphrase-based envelope encryption for configuration secrets",
		Version: "1.0.0",
		Commands: []*cli.Command{
			{
				Name:      "encrypt",
				Usage:     "Encrypt a value into a self-describing envelope",
				ArgsUsage: "<plaintext> (use '-' to read from stdin)",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "stage",
						Aliases:  []string{"s"},
						Required: true,
						Usage:    "Deployment stage whose passphrase should be used",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() != 1 {
						return fmt.Errorf("expected exactly one argument: the plaintext (or '-')")
					}

					container := app.NewContainer(config.Load())
					logger := container.Logger()
					defer commands.CloseContainer(container, logger)

					useCase, err := container.CryptoUseCase()
					if err != nil {
						return err
					}
					ks, err := container.Keystore()
					if err != nil {
						return err
					}

					return commands.RunEncrypt(
						ctx,
						useCase,
						ks,
						logger,
						commands.DefaultIO(),
						cmd.String("stage"),
						cmd.Args().First(),
					)
				},
			},
			{
				Name:      "decrypt",
				Usage:     "Decrypt an envelope back to its plaintext",
				ArgsUsage: "<envelope> (use '-' to read from stdin)",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "stage",
						Aliases:  []string{"s"},
						Required: true,
						Usage:    "Deployment stage whose passphrase should be used",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() != 1 {
						return fmt.Errorf("expected exactly one argument: the envelope (or '-')")
					}

					container := app.NewContainer(config.Load())
					logger := container.Logger()
					defer commands.CloseContainer(container, logger)

					useCase, err := container.CryptoUseCase()
					if err != nil {
						return err
					}
					ks, err := container.Keystore()
					if err != nil {
						return err
					}

					return commands.RunDecrypt(
						ctx,
						useCase,
						ks,
						logger,
						commands.DefaultIO(),
						cmd.String("stage"),
						cmd.Args().First(),
					)
				},
			},
			{
				Name:  "generate-passphrase",
				Usage: "Generate a random passphrase for a new deployment stage",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunGeneratePassphrase(commands.DefaultIO().Writer)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
		logger.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}
