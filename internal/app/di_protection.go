package app

import (
	"context"

	"github.com/i3hub-official/fieldshield/internal/config"
	"github.com/i3hub-official/fieldshield/internal/protection/domain"
	protectionService "github.com/i3hub-official/fieldshield/internal/protection/service"
	protectionUsecase "github.com/i3hub-official/fieldshield/internal/protection/usecase"
)

// initKeyRing loads and validates all key material from the environment,
// optionally unwrapping the master key through KMS first.
func (c *Container) initKeyRing() (*domain.KeyRing, error) {
	ctx := context.Background()

	var unwrapper domain.Unwrapper
	if c.config.KMSProvider != "" && c.config.KMSKeyURI != "" {
		keeper, err := c.kmsKeeperFor(ctx, c.config.KMSKeyURI)
		if err != nil {
			return nil, err
		}
		unwrapper = keeper
	}

	ring, err := domain.LoadKeyRingFromEnv(ctx, unwrapper)
	if err != nil {
		return nil, err
	}

	c.Logger().Info(
		"key ring loaded",
		"key_set_id", ring.ID(),
		"kms", c.config.KMSProvider != "",
	)
	return ring, nil
}

// kmsKeeperFor opens (once) the KMS keeper configured for master key unwrapping.
func (c *Container) kmsKeeperFor(ctx context.Context, keyURI string) (domain.KMSKeeper, error) {
	c.kmsKeeperInit.Do(func() {
		c.kmsKeeper, c.kmsKeeperErr = protectionService.NewKMSService().OpenKeeper(ctx, keyURI)
	})
	if c.kmsKeeperErr != nil {
		return nil, c.kmsKeeperErr
	}
	return c.kmsKeeper, nil
}

// initTierCipher builds the tier cipher service over the key ring.
func (c *Container) initTierCipher() (protectionService.TierCipher, error) {
	ring, err := c.KeyRing()
	if err != nil {
		return nil, err
	}
	return protectionService.NewTierCipher(ring, c.AEADManager(), sealedAlgorithm(c.config))
}

// initProtector assembles the protection façade and applies the metrics decorator.
func (c *Container) initProtector() (protectionUsecase.Protector, error) {
	cipher, err := c.TierCipher()
	if err != nil {
		return nil, err
	}
	indexer, err := c.SearchIndexer()
	if err != nil {
		return nil, err
	}
	vault, err := c.Vault()
	if err != nil {
		return nil, err
	}

	protector := protectionUsecase.NewProtector(cipher, indexer, vault)

	operationMetrics, err := c.OperationMetrics()
	if err != nil {
		return nil, err
	}
	return protectionUsecase.NewProtectorWithMetrics(protector, operationMetrics), nil
}

// sealedAlgorithm maps the configured name onto the Algorithm enum; the tier
// cipher rejects anything outside the closed set.
func sealedAlgorithm(cfg *config.Config) domain.Algorithm {
	return domain.Algorithm(cfg.SealedAlgorithm)
}
