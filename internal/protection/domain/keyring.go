package domain

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/i3hub-official/fieldshield/internal/errors"
)

// KeyRing is the single source of truth for all cryptographic parameters:
// one 32-byte master key, one fixed 12-byte nonce per searchable tier, a
// pepper for keyed search digests, and the password work factor.
//
// A ring is loaded once per process lifetime and is read-only afterwards, so
// it is safe for unbounded concurrent use. Rotation is an out-of-band
// re-encryption concern; the ring carries an ID so rotated material can be
// told apart from the old set.
type KeyRing struct {
	id         string
	masterKey  []byte
	nonces     map[Tier][]byte
	pepper     []byte
	iterations int
}

// Unwrapper decrypts a KMS-wrapped master key. *secrets.Keeper from
// gocloud.dev satisfies it.
type Unwrapper interface {
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
}

// Key ring loading error definitions. Every error names the offending
// environment variable; the loader never defaults, truncates or pads.
var (
	// ErrMasterKeyNotSet indicates FIELD_MASTER_KEY (or its wrapped variant) is missing.
	ErrMasterKeyNotSet = errors.Wrap(errors.ErrConfiguration, "FIELD_MASTER_KEY is not set")

	// ErrInvalidMasterKeyHex indicates the master key is not valid hex of the required length.
	ErrInvalidMasterKeyHex = errors.Wrap(errors.ErrConfiguration, "FIELD_MASTER_KEY must be 64 hex characters")

	// ErrPepperNotSet indicates FIELD_PEPPER is missing or empty.
	ErrPepperNotSet = errors.Wrap(errors.ErrConfiguration, "FIELD_PEPPER is not set")

	// ErrInvalidIterations indicates PASSWORD_ITERATIONS is not an integer at or above the floor.
	ErrInvalidIterations = errors.Wrap(errors.ErrConfiguration, "PASSWORD_ITERATIONS is invalid")

	// ErrNonceNotSet indicates a searchable tier's fixed nonce variable is missing.
	ErrNonceNotSet = errors.Wrap(errors.ErrConfiguration, "tier nonce is not set")

	// ErrInvalidNonceHex indicates a tier nonce is not valid hex of the required length.
	ErrInvalidNonceHex = errors.Wrap(errors.ErrConfiguration, "tier nonce must be 24 hex characters")

	// ErrNonceReuse indicates two searchable tiers were configured with the
	// same fixed nonce, which would allow cross-field linkage of ciphertexts.
	ErrNonceReuse = errors.Wrap(errors.ErrConfiguration, "tier nonces must be pairwise distinct")
)

// NonceEnvVar returns the environment variable holding the fixed nonce for a
// searchable tier, e.g. FIELD_NONCE_EMAIL.
func NonceEnvVar(t Tier) string {
	return "FIELD_NONCE_" + strings.ToUpper(string(t))
}

// ID returns the key set identifier.
func (k *KeyRing) ID() string {
	return k.id
}

// MasterKey returns the 32-byte master key material. Callers must not retain
// or mutate the returned slice.
func (k *KeyRing) MasterKey() []byte {
	return k.masterKey
}

// Nonce returns the fixed nonce configured for a searchable tier.
func (k *KeyRing) Nonce(t Tier) ([]byte, bool) {
	nonce, ok := k.nonces[t]
	return nonce, ok
}

// Pepper returns the application-wide secret mixed into search digests.
func (k *KeyRing) Pepper() []byte {
	return k.pepper
}

// Iterations returns the configured password hashing work factor.
func (k *KeyRing) Iterations() int {
	return k.iterations
}

// Close securely clears all key material from memory. The ring must not be
// used afterwards; call it only at application shutdown.
func (k *KeyRing) Close() {
	Zero(k.masterKey)
	Zero(k.pepper)
	for _, nonce := range k.nonces {
		Zero(nonce)
	}
	k.masterKey = nil
	k.pepper = nil
	k.nonces = nil
	k.id = ""
}

// LoadKeyRingFromEnv loads and validates all cryptographic parameters from
// environment variables.
//
// Required variables:
//   - FIELD_MASTER_KEY: 64 hex characters (32 bytes). When unwrapper is
//     non-nil, FIELD_MASTER_KEY_WRAPPED (base64 KMS ciphertext of the raw
//     32 bytes) is read instead.
//   - FIELD_NONCE_<TIER> for every searchable tier: 24 hex characters
//     (12 bytes), pairwise distinct across tiers.
//   - FIELD_PEPPER: any non-empty string.
//   - PASSWORD_ITERATIONS: integer >= MinPasswordIterations.
//   - FIELD_KEY_SET_ID: optional; a fresh UUID is assigned when absent.
//
// Any missing or malformed value is a fatal configuration error naming the
// variable. On error the partially built ring is closed so no key material
// survives a failed load.
func LoadKeyRingFromEnv(ctx context.Context, unwrapper Unwrapper) (*KeyRing, error) {
	ring := &KeyRing{nonces: make(map[Tier][]byte)}

	masterKey, err := loadMasterKey(ctx, unwrapper)
	if err != nil {
		ring.Close()
		return nil, err
	}
	ring.masterKey = masterKey

	for _, tier := range Tiers {
		if !tier.Searchable() {
			continue
		}
		envVar := NonceEnvVar(tier)
		raw := os.Getenv(envVar)
		if raw == "" {
			ring.Close()
			return nil, fmt.Errorf("%w: %s", ErrNonceNotSet, envVar)
		}
		nonce, err := hex.DecodeString(raw)
		if err != nil || len(nonce) != NonceSize {
			ring.Close()
			return nil, fmt.Errorf("%w: %s", ErrInvalidNonceHex, envVar)
		}
		for other, existing := range ring.nonces {
			if string(existing) == string(nonce) {
				ring.Close()
				return nil, fmt.Errorf("%w: %s equals %s", ErrNonceReuse, envVar, NonceEnvVar(other))
			}
		}
		ring.nonces[tier] = nonce
	}

	pepper := os.Getenv("FIELD_PEPPER")
	if pepper == "" {
		ring.Close()
		return nil, ErrPepperNotSet
	}
	ring.pepper = []byte(pepper)

	rawIterations := os.Getenv("PASSWORD_ITERATIONS")
	if rawIterations == "" {
		ring.Close()
		return nil, fmt.Errorf("%w: not set", ErrInvalidIterations)
	}
	iterations, err := strconv.Atoi(rawIterations)
	if err != nil {
		ring.Close()
		return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidIterations, rawIterations)
	}
	if iterations < MinPasswordIterations {
		ring.Close()
		return nil, fmt.Errorf(
			"%w: %d is below the minimum of %d",
			ErrInvalidIterations,
			iterations,
			MinPasswordIterations,
		)
	}
	ring.iterations = iterations

	ring.id = os.Getenv("FIELD_KEY_SET_ID")
	if ring.id == "" {
		ring.id = uuid.NewString()
	}

	return ring, nil
}

// loadMasterKey reads the master key either as raw hex or, when an unwrapper
// is supplied, as base64 KMS ciphertext. Intermediate buffers holding raw key
// bytes are handed to the ring; encoded forms carry no extra cleanup value.
func loadMasterKey(ctx context.Context, unwrapper Unwrapper) ([]byte, error) {
	if unwrapper != nil {
		wrapped := os.Getenv("FIELD_MASTER_KEY_WRAPPED")
		if wrapped == "" {
			return nil, errors.Wrap(errors.ErrConfiguration, "FIELD_MASTER_KEY_WRAPPED is not set")
		}
		ciphertext, err := base64.StdEncoding.DecodeString(wrapped)
		if err != nil {
			return nil, errors.Wrap(errors.ErrConfiguration, "FIELD_MASTER_KEY_WRAPPED is not valid base64")
		}
		key, err := unwrapper.Decrypt(ctx, ciphertext)
		if err != nil {
			return nil, errors.Wrap(errors.ErrConfiguration, "failed to unwrap master key")
		}
		if len(key) != KeySize {
			Zero(key)
			return nil, fmt.Errorf("%w: unwrapped key is %d bytes, want %d", ErrInvalidKeySize, len(key), KeySize)
		}
		return key, nil
	}

	raw := os.Getenv("FIELD_MASTER_KEY")
	if raw == "" {
		return nil, ErrMasterKeyNotSet
	}
	key, err := hex.DecodeString(raw)
	if err != nil || len(key) != KeySize {
		return nil, ErrInvalidMasterKeyHex
	}
	return key, nil
}
