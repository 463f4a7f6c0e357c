// Package canonical maps raw user input to one canonical representation per
// protection tier, applied before any cryptographic operation so that
// equal-meaning inputs always protect to identical output.
package canonical

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/i3hub-official/fieldshield/internal/protection/domain"
)

const (
	// ninLength is the fixed length of a national identification number.
	ninLength = 11
	// jambLength is the fixed length of a JAMB registration number.
	jambLength = 10
	// regNoMaxLength caps institutional registration numbers.
	regNoMaxLength = 20
)

var titleCaser = cases.Title(language.Und)

// Canonicalize normalizes raw input for the given tier. It is pure and total:
// it never fails, and an input that is empty after trimming canonicalizes to
// the empty string, which callers must treat as the explicit empty marker.
func Canonicalize(tier domain.Tier, raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	switch tier {
	case domain.TierSearchableEmail:
		return email(trimmed)
	case domain.TierSearchablePhone:
		return phone(trimmed)
	case domain.TierSearchableNIN:
		return digitsOnly(trimmed, ninLength)
	case domain.TierSearchableJAMB:
		return alphanumericUpper(trimmed, jambLength)
	case domain.TierSearchableRegNo:
		return registrationNumber(trimmed)
	case domain.TierBasic:
		return personalName(trimmed)
	case domain.TierOneWayCode:
		return strings.ToUpper(trimmed)
	case domain.TierPassword:
		// Passwords are never normalized: interior and edge whitespace may
		// be intentional. Only the all-whitespace case above maps to empty.
		return raw
	case domain.TierSealed:
		// Sealed identifiers are stored as entered, minus edge whitespace.
		return trimmed
	default:
		return trimmed
	}
}

// email lower-cases the address and strips internal whitespace.
func email(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// phone rewrites any locally-common Nigerian prefix variant (0803..., 803...,
// 234803..., +234803...) to the canonical +234 international form. Numbers
// entered with a different international prefix are kept as entered.
func phone(s string) string {
	var digits strings.Builder
	digits.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	hadPlus := strings.HasPrefix(strings.TrimSpace(s), "+")
	d := digits.String()
	if d == "" {
		return ""
	}

	switch {
	case strings.HasPrefix(d, "234"):
		return "+" + d
	case strings.HasPrefix(d, "0"):
		return "+234" + d[1:]
	case hadPlus:
		// Explicit non-Nigerian international prefix.
		return "+" + d
	default:
		// Bare subscriber number without trunk prefix.
		return "+234" + d
	}
}

// digitsOnly keeps digits and truncates to the scheme's fixed length.
func digitsOnly(s string, length int) string {
	var b strings.Builder
	b.Grow(length)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
		if b.Len() == length {
			break
		}
	}
	return b.String()
}

// alphanumericUpper keeps letters and digits, upper-cased, truncated to the
// scheme's fixed length.
func alphanumericUpper(s string, length int) string {
	var b strings.Builder
	b.Grow(length)
	for _, r := range strings.ToUpper(s) {
		if (r >= '0' && r <= '9') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
		if b.Len() == length {
			break
		}
	}
	return b.String()
}

// registrationNumber upper-cases and keeps letters, digits and the slash
// separator used by matric number schemes.
func registrationNumber(s string) string {
	var b strings.Builder
	b.Grow(regNoMaxLength)
	for _, r := range strings.ToUpper(s) {
		if (r >= '0' && r <= '9') || (r >= 'A' && r <= 'Z') || r == '/' {
			b.WriteRune(r)
		}
		if b.Len() >= regNoMaxLength {
			break
		}
	}
	return b.String()
}

// personalName collapses internal whitespace runs to single spaces and
// title-cases each word.
func personalName(s string) string {
	return titleCaser.String(strings.Join(strings.Fields(s), " "))
}
