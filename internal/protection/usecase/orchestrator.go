package usecase

import (
	"context"
	"fmt"

	"github.com/i3hub-official/fieldshield/internal/canonical"
	apperrors "github.com/i3hub-official/fieldshield/internal/errors"
	"github.com/i3hub-official/fieldshield/internal/password"
	"github.com/i3hub-official/fieldshield/internal/protection/domain"
	"github.com/i3hub-official/fieldshield/internal/protection/service"
)

// orchestrator implements Protector by dispatching each tier to its scheme.
// All state is read-only after construction, so one instance serves
// arbitrarily many goroutines.
type orchestrator struct {
	cipher  service.TierCipher
	indexer service.SearchIndexer
	vault   *password.Vault
}

// NewProtector creates the protection façade over the given services.
func NewProtector(
	cipher service.TierCipher,
	indexer service.SearchIndexer,
	vault *password.Vault,
) Protector {
	return &orchestrator{
		cipher:  cipher,
		indexer: indexer,
		vault:   vault,
	}
}

// Protect converts plaintext into its storage-safe representation for the tier.
func (o *orchestrator) Protect(
	_ context.Context,
	plaintext string,
	tier domain.Tier,
) (domain.ProtectedField, error) {
	canon := canonical.Canonicalize(tier, plaintext)
	if canon == "" {
		// Protecting an empty value is a no-op producing the empty marker.
		return domain.ProtectedField{}, nil
	}

	switch tier {
	case domain.TierPassword:
		record, err := o.vault.Hash(canon)
		if err != nil {
			return domain.ProtectedField{}, err
		}
		return domain.ProtectedField{Ciphertext: record}, nil

	case domain.TierOneWayCode:
		// The keyed context-bound digest is the stored value itself:
		// deterministic for lookup, never reversible.
		digest := o.indexer.Hash(canon, tier.ContextLabel())
		return domain.ProtectedField{Ciphertext: digest}, nil

	case domain.TierSealed:
		ciphertext, err := o.cipher.EncryptSealed(canon)
		if err != nil {
			return domain.ProtectedField{}, err
		}
		return domain.ProtectedField{Ciphertext: ciphertext}, nil

	case domain.TierBasic:
		ciphertext, err := o.cipher.EncryptBasic(canon)
		if err != nil {
			return domain.ProtectedField{}, err
		}
		return domain.ProtectedField{Ciphertext: ciphertext}, nil

	default:
		if !tier.Searchable() {
			return domain.ProtectedField{}, fmt.Errorf(
				"%w: unknown protection tier %q", apperrors.ErrInvalidInput, tier,
			)
		}
		ciphertext, err := o.cipher.EncryptSearchable(tier, canon)
		if err != nil {
			return domain.ProtectedField{}, err
		}
		return domain.ProtectedField{
			Ciphertext: ciphertext,
			SearchHash: o.indexer.Hash(canon, tier.ContextLabel()),
		}, nil
	}
}

// Unprotect recovers canonical plaintext from a protected field, failing closed.
func (o *orchestrator) Unprotect(
	_ context.Context,
	field domain.ProtectedField,
	tier domain.Tier,
) (string, error) {
	if !tier.Reversible() {
		return "", fmt.Errorf("%w: tier %s", domain.ErrNotReversible, tier)
	}
	if field.Empty() {
		// The empty marker round-trips to the empty value.
		return "", nil
	}

	switch tier {
	case domain.TierSealed:
		return o.cipher.DecryptSealed(field.Ciphertext)
	case domain.TierBasic:
		return o.cipher.DecryptBasic(field.Ciphertext)
	default:
		if !tier.Searchable() {
			return "", fmt.Errorf(
				"%w: unknown protection tier %q", apperrors.ErrInvalidInput, tier,
			)
		}
		return o.cipher.DecryptSearchable(tier, field.Ciphertext)
	}
}

// Verify reports whether plaintext matches the protected field.
func (o *orchestrator) Verify(
	ctx context.Context,
	plaintext string,
	field domain.ProtectedField,
	tier domain.Tier,
) (bool, error) {
	canon := canonical.Canonicalize(tier, plaintext)
	if field.Empty() {
		return canon == "", nil
	}

	switch tier {
	case domain.TierPassword:
		return o.vault.Verify(canon, field.Ciphertext), nil

	case domain.TierOneWayCode:
		return o.indexer.Equal(o.indexer.Hash(canon, tier.ContextLabel()), field.Ciphertext), nil

	default:
		recovered, err := o.Unprotect(ctx, field, tier)
		if err != nil {
			return false, err
		}
		match := recovered == canon
		if field.SearchHash != "" {
			// Guard against ciphertext/digest desynchronization: both the
			// decrypted value and the recomputed digest must agree.
			recomputed := o.indexer.Hash(canon, tier.ContextLabel())
			match = match && o.indexer.Equal(recomputed, field.SearchHash)
		}
		return match, nil
	}
}

// NeedsRehash reports whether a password record should be re-hashed.
func (o *orchestrator) NeedsRehash(field domain.ProtectedField) bool {
	if field.Empty() {
		return false
	}
	return o.vault.NeedsRehash(field.Ciphertext)
}
