// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// EncryptionAlgorithm selects the AEAD cipher ("aes-gcm" or "chacha20-poly1305").
	EncryptionAlgorithm string

	// Argon2MemoryKiB is the Argon2id memory cost in KiB.
	Argon2MemoryKiB int
	// Argon2Time is the Argon2id time cost (number of passes).
	Argon2Time int
	// Argon2Parallelism is the Argon2id lane count.
	Argon2Parallelism int

	// BatchParallelism is the maximum number of concurrent items in batch operations.
	// Each in-flight item holds a full Argon2 working set, so this bounds memory.
	BatchParallelism int

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Encryption
		EncryptionAlgorithm: env.GetString("ENCRYPTION_ALGORITHM", "aes-gcm"),

		// Key derivation
		Argon2MemoryKiB:   env.GetInt("ARGON2_MEMORY_KIB", 256*1024),
		Argon2Time:        env.GetInt("ARGON2_TIME", 4),
		Argon2Parallelism: env.GetInt("ARGON2_PARALLELISM", 3),

		// Batch operations
		BatchParallelism: env.GetInt("BATCH_PARALLELISM", 3),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "envseal"),
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
