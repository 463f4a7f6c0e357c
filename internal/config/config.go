// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
//
// Cryptographic key material is deliberately absent here: keys, nonces, the
// pepper and the password work factor are loaded and validated by the
// protection domain's KeyRing loader, which fails fast on malformed values
// and never defaults them. Config only carries settings that have sane
// defaults.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// SealedAlgorithm selects the AEAD used by the sealed tier
	// ("aes-gcm" or "chacha20-poly1305"). Changing it on an existing
	// deployment requires re-encrypting every sealed record.
	SealedAlgorithm string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string

	// KMSProvider is the KMS provider to use (e.g., "gcpkms", "awskms",
	// "azurekeyvault", "hashivault", "localsecrets"). When set together with
	// KMSKeyURI, the master key is loaded KMS-wrapped instead of as raw hex.
	KMSProvider string
	// KMSKeyURI is the URI for the wrapping key in the KMS.
	KMSKeyURI string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Sealed tier algorithm
		SealedAlgorithm: env.GetString("SEALED_ALGORITHM", "aes-gcm"),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "fieldshield"),

		// KMS configuration
		KMSProvider: env.GetString("KMS_PROVIDER", ""),
		KMSKeyURI:   env.GetString("KMS_KEY_URI", ""),
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
