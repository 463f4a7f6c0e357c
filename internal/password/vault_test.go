package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/i3hub-official/fieldshield/internal/errors"
	"github.com/i3hub-official/fieldshield/internal/protection/domain"
)

func TestNewVault(t *testing.T) {
	t.Run("accepts the floor", func(t *testing.T) {
		vault, err := NewVault(domain.MinPasswordIterations)
		assert.NoError(t, err)
		assert.NotNil(t, vault)
	})

	t.Run("rejects counts below the floor", func(t *testing.T) {
		_, err := NewVault(domain.MinPasswordIterations - 1)
		assert.ErrorIs(t, err, apperrors.ErrConfiguration)
	})
}

func TestVaultHash(t *testing.T) {
	vault, err := NewVault(domain.MinPasswordIterations)
	require.NoError(t, err)

	t.Run("record format", func(t *testing.T) {
		record, err := vault.Hash("Str0ng!Passw0rd")
		require.NoError(t, err)

		segments := strings.Split(record, ":")
		require.Len(t, segments, 4)
		assert.Equal(t, "1", segments[0])
		assert.Equal(t, "100000", segments[1])
		assert.Len(t, segments[2], 64) // 32-byte salt in hex
		assert.Len(t, segments[3], 64) // 32-byte derived key in hex
	})

	t.Run("fresh salt per call", func(t *testing.T) {
		first, err := vault.Hash("Str0ng!Passw0rd")
		require.NoError(t, err)
		second, err := vault.Hash("Str0ng!Passw0rd")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		assert.True(t, vault.Verify("Str0ng!Passw0rd", first))
		assert.True(t, vault.Verify("Str0ng!Passw0rd", second))
	})
}

func TestVaultVerify(t *testing.T) {
	vault, err := NewVault(domain.MinPasswordIterations)
	require.NoError(t, err)

	record, err := vault.Hash("Str0ng!Passw0rd")
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		assert.True(t, vault.Verify("Str0ng!Passw0rd", record))
	})

	t.Run("wrong password", func(t *testing.T) {
		assert.False(t, vault.Verify("Str0ng!Passw0rc", record))
	})

	t.Run("whitespace is significant", func(t *testing.T) {
		assert.False(t, vault.Verify(" Str0ng!Passw0rd", record))
	})

	t.Run("malformed records verify false, never error", func(t *testing.T) {
		for _, bad := range []string{
			"",
			"not a record",
			"2:100000:" + strings.Repeat("ab", 32) + ":" + strings.Repeat("ab", 32), // unknown version
			"1:999:" + strings.Repeat("ab", 32) + ":" + strings.Repeat("ab", 32),    // below the floor
			"1:100000:shortsalt:" + strings.Repeat("ab", 32),
			"1:100000:" + strings.Repeat("ab", 32) + ":zz",
		} {
			assert.False(t, vault.Verify("Str0ng!Passw0rd", bad), "record %q", bad)
		}
	})
}

func TestVaultNeedsRehash(t *testing.T) {
	vault, err := NewVault(domain.MinPasswordIterations)
	require.NoError(t, err)

	record, err := vault.Hash("Str0ng!Passw0rd")
	require.NoError(t, err)

	t.Run("current work factor", func(t *testing.T) {
		assert.False(t, vault.NeedsRehash(record))
	})

	t.Run("raised work factor", func(t *testing.T) {
		stronger, err := NewVault(210000)
		require.NoError(t, err)

		// Records from the old vault still verify but are flagged.
		assert.True(t, stronger.Verify("Str0ng!Passw0rd", record))
		assert.True(t, stronger.NeedsRehash(record))
	})

	t.Run("unparseable record is not flagged", func(t *testing.T) {
		assert.False(t, vault.NeedsRehash("garbage"))
	})
}
