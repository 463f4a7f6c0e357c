package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/i3hub-official/fieldshield/internal/errors"
)

func TestParseTier(t *testing.T) {
	t.Run("every listed tier parses to itself", func(t *testing.T) {
		for _, tier := range Tiers {
			parsed, err := ParseTier(string(tier))
			assert.NoError(t, err)
			assert.Equal(t, tier, parsed)
		}
	})

	t.Run("unknown tier is invalid input", func(t *testing.T) {
		_, err := ParseTier("bvn")
		assert.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("tier names are case sensitive", func(t *testing.T) {
		_, err := ParseTier("Email")
		assert.Error(t, err)
	})
}

func TestTierSearchable(t *testing.T) {
	searchable := []Tier{
		TierSearchableEmail,
		TierSearchablePhone,
		TierSearchableNIN,
		TierSearchableJAMB,
		TierSearchableRegNo,
	}
	for _, tier := range searchable {
		assert.True(t, tier.Searchable(), "tier %s", tier)
	}

	for _, tier := range []Tier{TierSealed, TierBasic, TierPassword, TierOneWayCode} {
		assert.False(t, tier.Searchable(), "tier %s", tier)
	}
}

func TestTierReversible(t *testing.T) {
	for _, tier := range Tiers {
		switch tier {
		case TierPassword, TierOneWayCode:
			assert.False(t, tier.Reversible(), "tier %s", tier)
		default:
			assert.True(t, tier.Reversible(), "tier %s", tier)
		}
	}
}

func TestTierContextLabel(t *testing.T) {
	// Context labels are the lower-case tier names; two tiers never share one.
	seen := map[string]Tier{}
	for _, tier := range Tiers {
		label := tier.ContextLabel()
		assert.Equal(t, string(tier), label)
		_, duplicate := seen[label]
		assert.False(t, duplicate, "label %s reused", label)
		seen[label] = tier
	}
}
