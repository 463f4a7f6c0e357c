// Package app provides the dependency injection container for assembling the
// protection library. Callers receive a handle to the container; there is no
// ambient global state, and every component is created exactly once even
// when many call sites race to trigger the first access.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/i3hub-official/fieldshield/internal/config"
	"github.com/i3hub-official/fieldshield/internal/metrics"
	"github.com/i3hub-official/fieldshield/internal/password"
	"github.com/i3hub-official/fieldshield/internal/protection/domain"
	protectionService "github.com/i3hub-official/fieldshield/internal/protection/service"
	protectionUsecase "github.com/i3hub-official/fieldshield/internal/protection/usecase"
)

// Container holds all library dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
//
// Each component and its initialization error are written only inside that
// component's sync.Once and read only after Do returns, which orders the
// write before every read; concurrent first access needs no further locking.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	keyRing         *domain.KeyRing
	kmsKeeper       domain.KMSKeeper
	metricsProvider *metrics.Provider

	// Services
	aeadManager      protectionService.AEADManager
	tierCipher       protectionService.TierCipher
	searchIndexer    protectionService.SearchIndexer
	vault            *password.Vault
	operationMetrics metrics.OperationMetrics

	// Use Cases
	protector protectionUsecase.Protector

	// Initialization guards, each paired with its stored error
	loggerInit           sync.Once
	keyRingInit          sync.Once
	keyRingErr           error
	kmsKeeperInit        sync.Once
	kmsKeeperErr         error
	metricsProviderInit  sync.Once
	metricsProviderErr   error
	aeadManagerInit      sync.Once
	tierCipherInit       sync.Once
	tierCipherErr        error
	searchIndexerInit    sync.Once
	searchIndexerErr     error
	vaultInit            sync.Once
	vaultErr             error
	operationMetricsInit sync.Once
	operationMetricsErr  error
	protectorInit        sync.Once
	protectorErr         error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config: cfg,
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

// KeyRing returns the loaded and validated key material. The process must not
// serve any cryptographic operation while this returns an error.
func (c *Container) KeyRing() (*domain.KeyRing, error) {
	c.keyRingInit.Do(func() {
		c.keyRing, c.keyRingErr = c.initKeyRing()
	})
	if c.keyRingErr != nil {
		return nil, c.keyRingErr
	}
	return c.keyRing, nil
}

// AEADManager returns the AEAD manager service.
func (c *Container) AEADManager() protectionService.AEADManager {
	c.aeadManagerInit.Do(func() {
		c.aeadManager = protectionService.NewAEADManager()
	})
	return c.aeadManager
}

// TierCipher returns the tier cipher service.
func (c *Container) TierCipher() (protectionService.TierCipher, error) {
	c.tierCipherInit.Do(func() {
		c.tierCipher, c.tierCipherErr = c.initTierCipher()
	})
	if c.tierCipherErr != nil {
		return nil, c.tierCipherErr
	}
	return c.tierCipher, nil
}

// SearchIndexer returns the keyed search indexer.
func (c *Container) SearchIndexer() (protectionService.SearchIndexer, error) {
	c.searchIndexerInit.Do(func() {
		ring, err := c.KeyRing()
		if err != nil {
			c.searchIndexerErr = err
			return
		}
		c.searchIndexer = protectionService.NewSearchIndexer(ring.Pepper())
	})
	if c.searchIndexerErr != nil {
		return nil, c.searchIndexerErr
	}
	return c.searchIndexer, nil
}

// Vault returns the password vault.
func (c *Container) Vault() (*password.Vault, error) {
	c.vaultInit.Do(func() {
		ring, err := c.KeyRing()
		if err != nil {
			c.vaultErr = err
			return
		}
		c.vault, c.vaultErr = password.NewVault(ring.Iterations())
	})
	if c.vaultErr != nil {
		return nil, c.vaultErr
	}
	return c.vault, nil
}

// Protector returns the protection façade, decorated with metrics when enabled.
func (c *Container) Protector() (protectionUsecase.Protector, error) {
	c.protectorInit.Do(func() {
		c.protector, c.protectorErr = c.initProtector()
	})
	if c.protectorErr != nil {
		return nil, c.protectorErr
	}
	return c.protector, nil
}

// MetricsProvider returns the metrics provider. Returns nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	c.metricsProviderInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		c.metricsProvider, c.metricsProviderErr = metrics.NewProvider()
	})
	if c.metricsProviderErr != nil {
		return nil, c.metricsProviderErr
	}
	return c.metricsProvider, nil
}

// OperationMetrics returns the operation metrics recorder (no-op when disabled).
func (c *Container) OperationMetrics() (metrics.OperationMetrics, error) {
	c.operationMetricsInit.Do(func() {
		if !c.config.MetricsEnabled {
			c.operationMetrics = metrics.NewNoOpOperationMetrics()
			return
		}
		provider, err := c.MetricsProvider()
		if err != nil {
			c.operationMetricsErr = err
			return
		}
		c.operationMetrics, c.operationMetricsErr = metrics.NewOperationMetrics(
			provider.MeterProvider(),
			c.config.MetricsNamespace,
		)
	})
	if c.operationMetricsErr != nil {
		return nil, c.operationMetricsErr
	}
	return c.operationMetrics, nil
}

// Shutdown releases all container resources: key material is zeroed and the
// metrics provider is flushed. The container must not be used afterwards.
func (c *Container) Shutdown(ctx context.Context) error {
	var shutdownErrors []error

	if c.keyRing != nil {
		c.keyRing.Close()
	}
	if c.kmsKeeper != nil {
		if err := c.kmsKeeper.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("kms keeper: %w", err))
		}
	}
	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider: %w", err))
		}
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
