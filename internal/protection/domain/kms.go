package domain

import "context"

// KMSKeeper abstracts a KMS wrapping key used to protect the master key at
// rest. *secrets.Keeper from gocloud.dev/secrets implements it.
type KMSKeeper interface {
	// Encrypt wraps plaintext with the KMS key.
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)

	// Decrypt unwraps ciphertext with the KMS key.
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)

	// Close releases the keeper's resources.
	Close() error
}
