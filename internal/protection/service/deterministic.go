package service

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
)

// DeterministicAESGCM is AES-256-GCM driven with a caller-supplied fixed
// nonce. Unlike AEAD implementations, it is not semantically secure:
// encrypting the same plaintext under the same nonce always yields the same
// ciphertext. That is the deliberate trade behind the searchable tiers, and
// it is only safe because each field type owns its own nonce and a nonce is
// never shared across field types.
type DeterministicAESGCM struct {
	aead cipher.AEAD
}

// NewDeterministicAESGCM creates a deterministic cipher over a 32-byte key.
func NewDeterministicAESGCM(key []byte) (*DeterministicAESGCM, error) {
	if len(key) != 32 {
		return nil, errors.New("key must be exactly 32 bytes")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &DeterministicAESGCM{aead: aead}, nil
}

// Seal encrypts plaintext under the fixed nonce with the AAD authenticated.
// The GCM tag is appended, so tampering is still detected on Open.
func (d *DeterministicAESGCM) Seal(nonce, plaintext, aad []byte) ([]byte, error) {
	if len(nonce) != d.aead.NonceSize() {
		return nil, fmt.Errorf("nonce must be %d bytes", d.aead.NonceSize())
	}
	return d.aead.Seal(nil, nonce, plaintext, aad), nil
}

// Open decrypts ciphertext under the fixed nonce, verifying the tag and AAD.
func (d *DeterministicAESGCM) Open(nonce, ciphertext, aad []byte) ([]byte, error) {
	plaintext, err := d.aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}
	return plaintext, nil
}
