package domain

import (
	"fmt"

	"github.com/i3hub-official/fieldshield/internal/errors"
)

// Tier names a protection strength bound to one category of sensitive field.
//
// The set is closed. Each tier fixes the cryptographic scheme, the
// canonicalization rule, and (for searchable tiers) the fixed nonce and the
// search-digest context label. That binding must never change for data already
// stored under the tier without an explicit migration.
type Tier string

const (
	// TierSealed protects the highest-sensitivity identifiers with
	// authenticated encryption under a fresh random nonce per call.
	// Not searchable: two calls with the same plaintext differ.
	TierSealed Tier = "sealed"

	// TierSearchableEmail deterministically encrypts email addresses so that
	// equal canonical addresses yield byte-identical ciphertext.
	TierSearchableEmail Tier = "email"

	// TierSearchablePhone deterministically encrypts phone numbers in
	// canonical +234 international form.
	TierSearchablePhone Tier = "phone"

	// TierSearchableNIN deterministically encrypts 11-digit national
	// identification numbers.
	TierSearchableNIN Tier = "nin"

	// TierSearchableJAMB deterministically encrypts 10-character JAMB
	// registration numbers.
	TierSearchableJAMB Tier = "jamb"

	// TierSearchableRegNo deterministically encrypts institutional
	// registration (matric) numbers.
	TierSearchableRegNo Tier = "regno"

	// TierBasic protects names, dates and locations: encrypted with a fresh
	// random nonce, neither searchable nor maximally hardened.
	TierBasic Tier = "basic"

	// TierPassword stores credentials as one-way salted iterated hashes.
	// Never reversible.
	TierPassword Tier = "password"

	// TierOneWayCode stores short verification codes as keyed one-way
	// digests. Deterministic (lookup-able) but never reversible.
	TierOneWayCode Tier = "onewaycode"
)

// Tiers lists every supported tier. Order is stable.
var Tiers = []Tier{
	TierSealed,
	TierSearchableEmail,
	TierSearchablePhone,
	TierSearchableNIN,
	TierSearchableJAMB,
	TierSearchableRegNo,
	TierBasic,
	TierPassword,
	TierOneWayCode,
}

// ParseTier converts a tier name into a Tier value.
// Returns ErrInvalidInput for anything outside the closed set.
func ParseTier(s string) (Tier, error) {
	for _, t := range Tiers {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: unknown protection tier %q", errors.ErrInvalidInput, s)
}

// Searchable reports whether the tier produces deterministic ciphertext and a
// search digest usable for equality lookup.
func (t Tier) Searchable() bool {
	switch t {
	case TierSearchableEmail, TierSearchablePhone, TierSearchableNIN, TierSearchableJAMB, TierSearchableRegNo:
		return true
	default:
		return false
	}
}

// Reversible reports whether protected values of this tier can be decrypted.
// Password and one-way-code records cannot.
func (t Tier) Reversible() bool {
	switch t {
	case TierPassword, TierOneWayCode:
		return false
	default:
		return true
	}
}

// ContextLabel returns the domain-separation label bound into search digests
// for this tier. The label is the tier name itself, always lower case, so the
// same raw value indexed under two tiers yields unrelated digests.
func (t Tier) ContextLabel() string {
	return string(t)
}

// String implements fmt.Stringer.
func (t Tier) String() string {
	return string(t)
}
