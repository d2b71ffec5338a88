// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"sync"

	"github.com/allisson/envseal/internal/config"
	cryptoDomain "github.com/allisson/envseal/internal/crypto/domain"
	cryptoService "github.com/allisson/envseal/internal/crypto/service"
	cryptoUseCase "github.com/allisson/envseal/internal/crypto/usecase"
	"github.com/allisson/envseal/internal/keystore"
	"github.com/allisson/envseal/internal/metrics"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics
	keystore        *keystore.Keystore

	// Use Cases
	cryptoUseCase cryptoUseCase.CryptoUseCase

	// Initialization flags and mutex for thread-safety
	mu                  sync.Mutex
	loggerInit          sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	keystoreInit        sync.Once
	cryptoUseCaseInit   sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// MetricsProvider returns the metrics provider instance.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		c.metricsProvider, err = metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["metricsProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder.
// It returns a no-op implementation when metrics collection is disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.initErrors["businessMetrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// Keystore returns the stage passphrase keystore loaded from environment variables.
func (c *Container) Keystore() (*keystore.Keystore, error) {
	var err error
	c.keystoreInit.Do(func() {
		c.keystore, err = keystore.LoadKeystoreFromEnv()
		if err != nil {
			c.initErrors["keystore"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["keystore"]; exists {
		return nil, storedErr
	}
	return c.keystore, nil
}

// CryptoUseCase returns the envelope encryption use case with logging and
// metrics decorators applied.
func (c *Container) CryptoUseCase() (cryptoUseCase.CryptoUseCase, error) {
	var err error
	c.cryptoUseCaseInit.Do(func() {
		c.cryptoUseCase, err = c.initCryptoUseCase()
		if err != nil {
			c.initErrors["cryptoUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["cryptoUseCase"]; exists {
		return nil, storedErr
	}
	return c.cryptoUseCase, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	// Shutdown metrics provider if initialized
	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	// Clear keystore passphrases if initialized
	if c.keystore != nil {
		c.keystore.Close()
	}

	// Return combined errors if any occurred
	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initBusinessMetrics creates the business metrics recorder based on configuration.
func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	if !c.config.MetricsEnabled {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}

	businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}

	return businessMetrics, nil
}

// initCryptoUseCase assembles the envelope encryption use case from its services
// and wraps it with the metrics and logging decorators.
func (c *Container) initCryptoUseCase() (cryptoUseCase.CryptoUseCase, error) {
	algorithm, err := cryptoDomain.ParseAlgorithm(c.config.EncryptionAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("failed to parse encryption algorithm: %w", err)
	}

	if c.config.Argon2MemoryKiB < 1 || int64(c.config.Argon2MemoryKiB) > math.MaxUint32 ||
		c.config.Argon2Time < 1 || int64(c.config.Argon2Time) > math.MaxUint32 ||
		c.config.Argon2Parallelism < 1 || c.config.Argon2Parallelism > math.MaxUint8 {
		return nil, fmt.Errorf(
			"invalid argon2 configuration: memory_kib=%d time=%d parallelism=%d",
			c.config.Argon2MemoryKiB,
			c.config.Argon2Time,
			c.config.Argon2Parallelism,
		)
	}

	deriver, err := cryptoService.NewArgon2KeyDeriver(cryptoService.Argon2Params{
		MemoryKiB:   uint32(c.config.Argon2MemoryKiB),
		Time:        uint32(c.config.Argon2Time),
		Parallelism: uint8(c.config.Argon2Parallelism),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create key deriver: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for crypto use case: %w", err)
	}

	useCase := cryptoUseCase.NewCryptoUseCase(
		cryptoService.NewCryptoRandSource(),
		deriver,
		cryptoService.NewAEADManager(),
		cryptoService.NewHMACIntegrity(),
		algorithm,
		c.config.BatchParallelism,
	)
	useCase = cryptoUseCase.NewCryptoUseCaseWithMetrics(useCase, businessMetrics)
	useCase = cryptoUseCase.NewCryptoUseCaseWithLogging(useCase, c.Logger())

	return useCase, nil
}
