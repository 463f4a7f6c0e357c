package service

import (
	"fmt"

	apperrors "github.com/i3hub-official/fieldshield/internal/errors"
	"github.com/i3hub-official/fieldshield/internal/protection/domain"
)

// TierCipherService implements TierCipher over a loaded key ring.
//
// The sealed tier uses the configured AEAD algorithm with a fresh random
// nonce per call. The basic tier always uses AES-GCM with a fresh random
// nonce. Searchable tiers use AES-GCM under the tier's fixed nonce with the
// tier label as AAD, so a ciphertext relabeled to another tier fails to open.
type TierCipherService struct {
	sealed        AEAD
	basic         AEAD
	deterministic *DeterministicAESGCM
	ring          *domain.KeyRing
}

// NewTierCipher builds a TierCipherService from the key ring. The sealed
// algorithm comes from configuration; everything else is fixed by the wire
// formats.
func NewTierCipher(
	ring *domain.KeyRing,
	manager AEADManager,
	sealedAlg domain.Algorithm,
) (*TierCipherService, error) {
	sealed, err := manager.CreateCipher(ring.MasterKey(), sealedAlg)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create sealed cipher")
	}

	basic, err := manager.CreateCipher(ring.MasterKey(), domain.AESGCM)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create basic cipher")
	}

	deterministic, err := NewDeterministicAESGCM(ring.MasterKey())
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create deterministic cipher")
	}

	return &TierCipherService{
		sealed:        sealed,
		basic:         basic,
		deterministic: deterministic,
		ring:          ring,
	}, nil
}

// EncryptSealed encrypts plaintext with a fresh random nonce into
// "nonce:tag:cipher". Two calls with identical plaintext produce different
// ciphertexts.
func (t *TierCipherService) EncryptSealed(plaintext string) (string, error) {
	sealed, nonce, err := t.sealed.Encrypt([]byte(plaintext), nil)
	if err != nil {
		return "", apperrors.Wrap(err, "sealed encryption failed")
	}
	return encodeSealed(nonce, sealed), nil
}

// DecryptSealed reverses EncryptSealed, failing closed on any malformed
// segment or tag mismatch.
func (t *TierCipherService) DecryptSealed(encoded string) (string, error) {
	nonce, sealed, err := decodeSealed(encoded)
	if err != nil {
		return "", err
	}

	plaintext, err := t.sealed.Decrypt(sealed, nonce, nil)
	if err != nil {
		return "", domain.ErrDecryptionFailed
	}
	return string(plaintext), nil
}

// EncryptSearchable deterministically encrypts plaintext under the tier's
// fixed nonce. Equal plaintext always yields byte-identical output for the
// same tier; different tiers never share a nonce.
func (t *TierCipherService) EncryptSearchable(tier domain.Tier, plaintext string) (string, error) {
	nonce, ok := t.ring.Nonce(tier)
	if !ok {
		return "", fmt.Errorf("%w: tier %s has no fixed nonce", apperrors.ErrTierMisuse, tier)
	}

	sealed, err := t.deterministic.Seal(nonce, []byte(plaintext), []byte(tier.ContextLabel()))
	if err != nil {
		return "", apperrors.Wrap(err, "searchable encryption failed")
	}
	return encodeSearchable(sealed), nil
}

// DecryptSearchable reverses EncryptSearchable for the same tier.
func (t *TierCipherService) DecryptSearchable(tier domain.Tier, encoded string) (string, error) {
	nonce, ok := t.ring.Nonce(tier)
	if !ok {
		return "", fmt.Errorf("%w: tier %s has no fixed nonce", apperrors.ErrTierMisuse, tier)
	}

	sealed, err := decodeSearchable(encoded)
	if err != nil {
		return "", err
	}

	plaintext, err := t.deterministic.Open(nonce, sealed, []byte(tier.ContextLabel()))
	if err != nil {
		return "", domain.ErrDecryptionFailed
	}
	return string(plaintext), nil
}

// EncryptBasic encrypts plaintext with a fresh random nonce into "nonce:cipher".
func (t *TierCipherService) EncryptBasic(plaintext string) (string, error) {
	sealed, nonce, err := t.basic.Encrypt([]byte(plaintext), nil)
	if err != nil {
		return "", apperrors.Wrap(err, "basic encryption failed")
	}
	return encodeBasic(nonce, sealed), nil
}

// DecryptBasic reverses EncryptBasic.
func (t *TierCipherService) DecryptBasic(encoded string) (string, error) {
	nonce, sealed, err := decodeBasic(encoded)
	if err != nil {
		return "", err
	}

	plaintext, err := t.basic.Decrypt(sealed, nonce, nil)
	if err != nil {
		return "", domain.ErrDecryptionFailed
	}
	return string(plaintext), nil
}
