// Package usecase wires canonicalization, the tier ciphers, the search
// indexer and the password vault into the protection façade callers use.
package usecase

import (
	"context"

	"github.com/i3hub-official/fieldshield/internal/protection/domain"
)

// Protector is the only entry point callers use to protect and recover
// sensitive field values.
type Protector interface {
	// Protect canonicalizes plaintext per tier and converts it into a
	// storage-safe ProtectedField. Empty input (after canonicalization)
	// short-circuits to the empty field marker.
	Protect(ctx context.Context, plaintext string, tier domain.Tier) (domain.ProtectedField, error)

	// Unprotect reverses a protected field back to canonical plaintext.
	// It fails closed: corruption and tampering surface as integrity
	// violations, and calling it on a one-way tier is reported as tier
	// misuse. Neither is ever downgraded to an empty result.
	Unprotect(ctx context.Context, field domain.ProtectedField, tier domain.Tier) (string, error)

	// Verify reports whether plaintext matches the protected field. For the
	// password tier it delegates to the vault; for reversible tiers it
	// reverses and compares, and when the field carries a search digest it
	// independently recomputes the digest and requires both checks to agree.
	Verify(ctx context.Context, plaintext string, field domain.ProtectedField, tier domain.Tier) (bool, error)

	// NeedsRehash reports whether a password record was hashed with an
	// iteration count different from the currently configured one. The
	// caller re-hashes on the next successful login; nothing happens
	// automatically.
	NeedsRehash(field domain.ProtectedField) bool
}
