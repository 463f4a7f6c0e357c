package commands

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"

	"github.com/i3hub-official/fieldshield/internal/protection/domain"
	protectionService "github.com/i3hub-official/fieldshield/internal/protection/service"
)

// RunGenerateKeys emits a complete key material environment block: a 32-byte
// master key, one fixed 12-byte nonce per searchable tier, a 32-byte pepper,
// the password iteration count, and a fresh key-set ID.
//
// When kmsProvider and kmsKeyURI are both set, the master key is wrapped with
// the KMS key and emitted as FIELD_MASTER_KEY_WRAPPED (base64) instead of raw
// hex. For local development use kmsProvider="localsecrets" with
// kmsKeyURI="base64key://<32-byte-base64-key>"; never in production.
//
// Raw key bytes are zeroed after encoding.
func RunGenerateKeys(ctx context.Context, io IOTuple, kmsProvider, kmsKeyURI string, iterations int) error {
	if (kmsProvider == "") != (kmsKeyURI == "") {
		return fmt.Errorf("--kms-provider and --kms-key-uri must be set together")
	}
	if iterations < domain.MinPasswordIterations {
		return fmt.Errorf(
			"--iterations must be at least %d, got %d",
			domain.MinPasswordIterations, iterations,
		)
	}

	masterKey := make([]byte, domain.KeySize)
	if _, err := rand.Read(masterKey); err != nil {
		return fmt.Errorf("failed to generate master key: %w", err)
	}
	defer domain.Zero(masterKey)

	pepper := make([]byte, 32)
	if _, err := rand.Read(pepper); err != nil {
		return fmt.Errorf("failed to generate pepper: %w", err)
	}
	defer domain.Zero(pepper)

	fmt.Fprintf(io.Writer, "FIELD_KEY_SET_ID=%q\n", uuid.NewString())

	if kmsProvider != "" {
		keeper, err := protectionService.NewKMSService().OpenKeeper(ctx, kmsKeyURI)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := keeper.Close(); closeErr != nil {
				fmt.Fprintf(io.Writer, "# Warning: failed to close KMS keeper: %v\n", closeErr)
			}
		}()

		wrapped, err := keeper.Encrypt(ctx, masterKey)
		if err != nil {
			return fmt.Errorf("failed to wrap master key: %w", err)
		}

		fmt.Fprintf(io.Writer, "FIELD_MASTER_KEY_WRAPPED=%q\n", base64.StdEncoding.EncodeToString(wrapped))
		fmt.Fprintf(io.Writer, "KMS_PROVIDER=%q\n", kmsProvider)
		fmt.Fprintf(io.Writer, "KMS_KEY_URI=%q\n", kmsKeyURI)
	} else {
		fmt.Fprintf(io.Writer, "FIELD_MASTER_KEY=%q\n", hex.EncodeToString(masterKey))
	}

	for _, tier := range domain.Tiers {
		if !tier.Searchable() {
			continue
		}
		nonce := make([]byte, domain.NonceSize)
		if _, err := rand.Read(nonce); err != nil {
			return fmt.Errorf("failed to generate nonce for tier %s: %w", tier, err)
		}
		fmt.Fprintf(io.Writer, "%s=%q\n", domain.NonceEnvVar(tier), hex.EncodeToString(nonce))
	}

	fmt.Fprintf(io.Writer, "FIELD_PEPPER=%q\n", hex.EncodeToString(pepper))
	fmt.Fprintf(io.Writer, "PASSWORD_ITERATIONS=%q\n", fmt.Sprintf("%d", iterations))

	return nil
}
