package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/i3hub-official/fieldshield/internal/config"
	"github.com/i3hub-official/fieldshield/internal/protection/domain"
)

func setContainerEnv(t *testing.T) {
	t.Helper()
	t.Setenv("FIELD_MASTER_KEY", "00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff")
	t.Setenv("FIELD_NONCE_EMAIL", "200000000000000000000001")
	t.Setenv("FIELD_NONCE_PHONE", "200000000000000000000002")
	t.Setenv("FIELD_NONCE_NIN", "200000000000000000000003")
	t.Setenv("FIELD_NONCE_JAMB", "200000000000000000000004")
	t.Setenv("FIELD_NONCE_REGNO", "200000000000000000000005")
	t.Setenv("FIELD_PEPPER", "di-test-pepper")
	t.Setenv("PASSWORD_ITERATIONS", "100000")
	t.Setenv("FIELD_KEY_SET_ID", "")
	t.Setenv("FIELD_MASTER_KEY_WRAPPED", "")
	t.Setenv("KMS_PROVIDER", "")
	t.Setenv("KMS_KEY_URI", "")
}

func testConfig() *config.Config {
	return &config.Config{
		LogLevel:         "error",
		SealedAlgorithm:  "aes-gcm",
		MetricsEnabled:   false,
		MetricsNamespace: "fieldshield",
	}
}

func TestContainer(t *testing.T) {
	setContainerEnv(t)

	container := NewContainer(testConfig())
	defer func() {
		assert.NoError(t, container.Shutdown(context.Background()))
	}()

	t.Run("config and logger", func(t *testing.T) {
		assert.NotNil(t, container.Config())
		assert.NotNil(t, container.Logger())
		assert.Same(t, container.Logger(), container.Logger())
	})

	t.Run("key ring loads once", func(t *testing.T) {
		ring, err := container.KeyRing()
		require.NoError(t, err)

		again, err := container.KeyRing()
		require.NoError(t, err)
		assert.Same(t, ring, again)
	})

	t.Run("protector protects end to end", func(t *testing.T) {
		protector, err := container.Protector()
		require.NoError(t, err)

		field, err := protector.Protect(context.Background(), "student@mouau.edu.ng", domain.TierSearchableEmail)
		require.NoError(t, err)
		assert.NotEmpty(t, field.Ciphertext)
		assert.NotEmpty(t, field.SearchHash)
	})

	t.Run("metrics disabled yields nil provider and no-op recorder", func(t *testing.T) {
		provider, err := container.MetricsProvider()
		require.NoError(t, err)
		assert.Nil(t, provider)

		recorder, err := container.OperationMetrics()
		require.NoError(t, err)
		assert.NotNil(t, recorder)
	})
}

func TestContainerConcurrentAccess(t *testing.T) {
	setContainerEnv(t)

	container := NewContainer(testConfig())
	defer container.Shutdown(context.Background())

	// All goroutines must observe the same lazily-built protector.
	first, err := container.Protector()
	require.NoError(t, err)

	g := new(errgroup.Group)
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			protector, err := container.Protector()
			if err != nil {
				return err
			}
			assert.Same(t, first, protector)
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

// TestContainerConcurrentFailure hammers different accessors from many
// goroutines against a broken environment. Every component stores its
// initialization error behind its own once guard, so racing first accesses
// must all observe the same failure with no shared mutable state between them.
func TestContainerConcurrentFailure(t *testing.T) {
	setContainerEnv(t)
	t.Setenv("FIELD_MASTER_KEY", "")

	container := NewContainer(testConfig())
	defer container.Shutdown(context.Background())

	g := new(errgroup.Group)
	for i := 0; i < 50; i++ {
		g.Go(func() error {
			_, err := container.TierCipher()
			assert.ErrorIs(t, err, domain.ErrMasterKeyNotSet)
			return nil
		})
		g.Go(func() error {
			_, err := container.SearchIndexer()
			assert.ErrorIs(t, err, domain.ErrMasterKeyNotSet)
			return nil
		})
		g.Go(func() error {
			_, err := container.Vault()
			assert.ErrorIs(t, err, domain.ErrMasterKeyNotSet)
			return nil
		})
		g.Go(func() error {
			_, err := container.Protector()
			assert.ErrorIs(t, err, domain.ErrMasterKeyNotSet)
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestContainerKeyRingFailure(t *testing.T) {
	setContainerEnv(t)
	t.Setenv("FIELD_MASTER_KEY", "")

	container := NewContainer(testConfig())
	defer container.Shutdown(context.Background())

	_, err := container.KeyRing()
	require.ErrorIs(t, err, domain.ErrMasterKeyNotSet)

	// Dependent components surface the same stored error.
	_, err = container.Protector()
	require.ErrorIs(t, err, domain.ErrMasterKeyNotSet)
}
