// Package fieldshield is a tiered field-level data protection library: it
// converts sensitive personal field values (identity numbers, email
// addresses, phone numbers, registration numbers, passwords) into
// storage-safe representations that never expose plaintext at rest, still
// allow exact-match lookup where the field needs it, and apply a strength of
// protection matched to each field type's sensitivity.
//
// The library has no network, file or CLI surface of its own; the embedding
// application persists the opaque strings it returns and passes them back in.
package fieldshield

import (
	"context"
	"net/http"

	"github.com/i3hub-official/fieldshield/internal/app"
	"github.com/i3hub-official/fieldshield/internal/config"
	"github.com/i3hub-official/fieldshield/internal/password"
	"github.com/i3hub-official/fieldshield/internal/protection/domain"
)

// Tier names a protection strength bound to one category of sensitive field.
type Tier = domain.Tier

// The closed set of supported tiers.
const (
	TierSealed          = domain.TierSealed
	TierSearchableEmail = domain.TierSearchableEmail
	TierSearchablePhone = domain.TierSearchablePhone
	TierSearchableNIN   = domain.TierSearchableNIN
	TierSearchableJAMB  = domain.TierSearchableJAMB
	TierSearchableRegNo = domain.TierSearchableRegNo
	TierBasic           = domain.TierBasic
	TierPassword        = domain.TierPassword
	TierOneWayCode      = domain.TierOneWayCode
)

// ProtectedField is the storage-safe representation of one plaintext value.
type ProtectedField = domain.ProtectedField

// ParseTier converts a tier name into a Tier value.
var ParseTier = domain.ParseTier

// Shield is the protection façade handed to the embedding application.
// It is safe for unbounded concurrent use; all cryptographic state is
// loaded once and read-only afterwards.
type Shield struct {
	container *app.Container
	protector protector
	policy    password.Policy
}

// protector mirrors the internal façade so Shield methods stay thin.
type protector interface {
	Protect(ctx context.Context, plaintext string, tier Tier) (ProtectedField, error)
	Unprotect(ctx context.Context, field ProtectedField, tier Tier) (string, error)
	Verify(ctx context.Context, plaintext string, field ProtectedField, tier Tier) (bool, error)
	NeedsRehash(field ProtectedField) bool
}

// New builds a Shield from environment configuration. It fails fast on
// missing or malformed key material: no operation is served in that state.
func New() (*Shield, error) {
	container := app.NewContainer(config.Load())
	p, err := container.Protector()
	if err != nil {
		return nil, err
	}
	return &Shield{
		container: container,
		protector: p,
		policy:    password.DefaultPolicy(),
	}, nil
}

// Protect converts plaintext into its storage-safe representation for the tier.
func (s *Shield) Protect(ctx context.Context, plaintext string, tier Tier) (ProtectedField, error) {
	return s.protector.Protect(ctx, plaintext, tier)
}

// Unprotect reverses a protected field back to canonical plaintext, failing
// closed on corruption, tampering, or one-way tiers.
func (s *Shield) Unprotect(ctx context.Context, field ProtectedField, tier Tier) (string, error) {
	return s.protector.Unprotect(ctx, field, tier)
}

// Verify reports whether plaintext matches the protected field.
func (s *Shield) Verify(ctx context.Context, plaintext string, field ProtectedField, tier Tier) (bool, error) {
	return s.protector.Verify(ctx, plaintext, field, tier)
}

// NeedsRehash reports whether a password record should be re-hashed on the
// next successful login.
func (s *Shield) NeedsRehash(field ProtectedField) bool {
	return s.protector.NeedsRehash(field)
}

// CheckPasswordStrength validates a candidate password and returns every
// violated rule at once, or nil when the password passes.
func (s *Shield) CheckPasswordStrength(candidate string) error {
	return s.policy.Check(candidate)
}

// MetricsHandler returns the Prometheus exposition handler, or nil when
// metrics are disabled. The embedding application decides where to mount it.
func (s *Shield) MetricsHandler() (http.Handler, error) {
	provider, err := s.container.MetricsProvider()
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, nil
	}
	return provider.Handler(), nil
}

// Close zeroes key material and flushes metrics. The Shield must not be used
// afterwards.
func (s *Shield) Close(ctx context.Context) error {
	return s.container.Shutdown(ctx)
}
