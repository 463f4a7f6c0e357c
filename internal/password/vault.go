// Package password provides one-way credential storage: salted, iterated
// hashing with versioned records, verification, rehash signalling, and the
// password strength policy. It is independent of the reversible tiers and
// never produces recoverable plaintext.
package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"

	apperrors "github.com/i3hub-official/fieldshield/internal/errors"
	"github.com/i3hub-official/fieldshield/internal/protection/domain"
)

const (
	// recordVersion tags the current record format. Version 1 is
	// PBKDF2-SHA256 with a 32-byte salt and a 32-byte derived key.
	recordVersion = "1"

	// saltSize is the fixed salt length in bytes for version 1 records.
	saltSize = 32

	// derivedKeySize is the fixed derived key length in bytes for version 1 records.
	derivedKeySize = 32

	// recordSegments is the segment count of an encoded record:
	// version:iterations:salt:derivedKey.
	recordSegments = 4
)

// Vault hashes and verifies credentials as versioned one-way records.
// Stateless beyond the configured iteration count; safe for concurrent use.
type Vault struct {
	iterations int
}

// NewVault creates a Vault with the configured PBKDF2 iteration count.
// The count must already satisfy the floor; the key ring loader enforces it.
func NewVault(iterations int) (*Vault, error) {
	if iterations < domain.MinPasswordIterations {
		return nil, fmt.Errorf(
			"%w: password iterations %d below minimum %d",
			apperrors.ErrConfiguration, iterations, domain.MinPasswordIterations,
		)
	}
	return &Vault{iterations: iterations}, nil
}

// Hash derives a one-way record from the password with a fresh random salt,
// encoded as "version:iterations:saltHex:derivedKeyHex". Two calls with the
// same password yield different records that both verify.
func (v *Vault) Hash(password string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", apperrors.Wrap(err, "failed to generate salt")
	}

	derived := pbkdf2.Key([]byte(password), salt, v.iterations, derivedKeySize, sha256.New)

	return strings.Join([]string{
		recordVersion,
		strconv.Itoa(v.iterations),
		hex.EncodeToString(salt),
		hex.EncodeToString(derived),
	}, ":"), nil
}

// Verify re-derives the key with the record's stored salt and iteration
// count and compares in constant time. It returns false, never an error,
// when the record is unparseable, carries an unknown version, has wrong
// salt or key widths, or declares an iteration count below the floor
// (downgrade protection).
func (v *Vault) Verify(password, record string) bool {
	parsed, err := parseRecord(record)
	if err != nil {
		return false
	}

	derived := pbkdf2.Key([]byte(password), parsed.salt, parsed.iterations, derivedKeySize, sha256.New)
	return subtle.ConstantTimeCompare(derived, parsed.derivedKey) == 1
}

// NeedsRehash reports whether the record's iteration count differs from the
// currently configured count, signalling the caller to re-hash on the next
// successful login. It never re-hashes by itself.
func (v *Vault) NeedsRehash(record string) bool {
	parsed, err := parseRecord(record)
	if err != nil {
		return false
	}
	return parsed.iterations != v.iterations
}

// parsedRecord holds the decoded segments of a version 1 record.
type parsedRecord struct {
	iterations int
	salt       []byte
	derivedKey []byte
}

// parseRecord decodes and validates a record against the version's fixed
// widths and the iteration floor.
func parseRecord(record string) (parsedRecord, error) {
	segments := strings.Split(record, ":")
	if len(segments) != recordSegments {
		return parsedRecord{}, fmt.Errorf(
			"%w: password record has %d segments, want %d",
			apperrors.ErrIntegrityViolation, len(segments), recordSegments,
		)
	}

	if segments[0] != recordVersion {
		return parsedRecord{}, fmt.Errorf(
			"%w: unrecognized password record version %q",
			apperrors.ErrIntegrityViolation, segments[0],
		)
	}

	iterations, err := strconv.Atoi(segments[1])
	if err != nil || iterations < domain.MinPasswordIterations {
		return parsedRecord{}, fmt.Errorf(
			"%w: password record iteration count is invalid or below minimum",
			apperrors.ErrIntegrityViolation,
		)
	}

	salt, err := hex.DecodeString(segments[2])
	if err != nil || len(salt) != saltSize {
		return parsedRecord{}, fmt.Errorf(
			"%w: password record salt is invalid", apperrors.ErrIntegrityViolation,
		)
	}

	derivedKey, err := hex.DecodeString(segments[3])
	if err != nil || len(derivedKey) != derivedKeySize {
		return parsedRecord{}, fmt.Errorf(
			"%w: password record derived key is invalid", apperrors.ErrIntegrityViolation,
		)
	}

	return parsedRecord{iterations: iterations, salt: salt, derivedKey: derivedKey}, nil
}
