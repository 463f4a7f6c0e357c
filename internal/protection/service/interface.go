// Package service implements the cryptographic services behind the protection
// tiers: AEAD ciphers (AES-256-GCM, ChaCha20-Poly1305), the deterministic
// fixed-nonce cipher for searchable tiers, the wire codec, and the keyed
// search indexer.
package service

import (
	"github.com/i3hub-official/fieldshield/internal/protection/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Encrypt encrypts plaintext with optional AAD and returns ciphertext and nonce.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt decrypts ciphertext using the provided nonce and AAD.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}

// AEADManager defines the interface for creating AEAD cipher instances.
type AEADManager interface {
	// CreateCipher creates an AEAD cipher instance for the specified algorithm.
	CreateCipher(key []byte, alg domain.Algorithm) (AEAD, error)
}

// TierCipher implements the three reversible protection strengths over wire
// strings. All decrypt paths fail closed: malformed encodings and failed tag
// checks surface as integrity violations, never as plaintext or empty output.
type TierCipher interface {
	// EncryptSealed encrypts with a fresh random nonce into "nonce:tag:cipher".
	EncryptSealed(plaintext string) (string, error)

	// DecryptSealed reverses EncryptSealed.
	DecryptSealed(encoded string) (string, error)

	// EncryptSearchable deterministically encrypts under the tier's fixed
	// nonce into a bare "cipher" segment. Identical canonical plaintext
	// always yields byte-identical output for the same tier.
	EncryptSearchable(tier domain.Tier, plaintext string) (string, error)

	// DecryptSearchable reverses EncryptSearchable for the same tier.
	DecryptSearchable(tier domain.Tier, encoded string) (string, error)

	// EncryptBasic encrypts with a fresh random nonce into "nonce:cipher".
	EncryptBasic(plaintext string) (string, error)

	// DecryptBasic reverses EncryptBasic.
	DecryptBasic(encoded string) (string, error)
}

// SearchIndexer derives keyed, deterministic, non-reversible digests usable
// as database-indexable surrogates for equality search.
type SearchIndexer interface {
	// Hash combines the lower-cased context label, the canonical plaintext
	// and the pepper through HMAC-SHA256 and returns a hex digest.
	Hash(canonical, contextLabel string) string

	// Equal compares two digests in constant time.
	Equal(a, b string) bool
}
