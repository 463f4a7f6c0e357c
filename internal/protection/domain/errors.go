package domain

import (
	"github.com/i3hub-official/fieldshield/internal/errors"
)

// Cryptographic operation error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors to
// provide context for cryptographic failures. Integrity errors are never
// downgraded to "not found" or an empty result by any layer above.
var (
	// ErrUnsupportedAlgorithm indicates the requested encryption algorithm is
	// not supported. Supported: AESGCM (aes-gcm), ChaCha20 (chacha20-poly1305).
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrInvalidKeySize indicates the cryptographic key size is invalid.
	// All keys must be exactly 32 bytes (256 bits).
	ErrInvalidKeySize = errors.Wrap(errors.ErrConfiguration, "invalid key size")

	// ErrDecryptionFailed indicates a decryption operation failed: wrong key,
	// tampered ciphertext, or an invalid nonce. The specific cause is not
	// disclosed to avoid aiding an attacker.
	ErrDecryptionFailed = errors.Wrap(errors.ErrIntegrityViolation, "decryption failed")

	// ErrMalformedCiphertext indicates stored ciphertext does not parse under
	// the tier's wire format: wrong segment count, non-hex content, or a
	// segment of the wrong length. Classified as corruption, never as absence.
	ErrMalformedCiphertext = errors.Wrap(errors.ErrIntegrityViolation, "malformed ciphertext")

	// ErrNotReversible indicates Unprotect was called on a one-way tier
	// (password or one-way code). This is a programming error in the caller.
	ErrNotReversible = errors.Wrap(errors.ErrTierMisuse, "tier is not reversible")
)
