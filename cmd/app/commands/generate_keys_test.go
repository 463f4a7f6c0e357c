package commands

import (
	"bufio"
	"bytes"
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i3hub-official/fieldshield/internal/protection/domain"
)

// parseEnvOutput decodes the KEY="value" lines the command emits.
func parseEnvOutput(t *testing.T, output string) map[string]string {
	t.Helper()
	env := map[string]string{}
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, rawValue, found := strings.Cut(line, "=")
		require.True(t, found, "line %q", line)
		value, err := strconv.Unquote(rawValue)
		require.NoError(t, err, "line %q", line)
		env[key] = value
	}
	return env
}

func TestRunGenerateKeys(t *testing.T) {
	t.Run("emits a complete environment block", func(t *testing.T) {
		var out bytes.Buffer
		io := IOTuple{Reader: strings.NewReader(""), Writer: &out}

		err := RunGenerateKeys(context.Background(), io, "", "", 210000)
		require.NoError(t, err)

		env := parseEnvOutput(t, out.String())
		assert.Len(t, env["FIELD_MASTER_KEY"], domain.KeySize*2)
		assert.Len(t, env["FIELD_PEPPER"], 64)
		assert.Equal(t, "210000", env["PASSWORD_ITERATIONS"])
		assert.NotEmpty(t, env["FIELD_KEY_SET_ID"])

		seen := map[string]bool{}
		for _, tier := range domain.Tiers {
			if !tier.Searchable() {
				continue
			}
			nonce := env[domain.NonceEnvVar(tier)]
			assert.Len(t, nonce, domain.NonceSize*2, "tier %s", tier)
			assert.False(t, seen[nonce], "nonce reused for tier %s", tier)
			seen[nonce] = true
		}
	})

	t.Run("kms flags must be paired", func(t *testing.T) {
		var out bytes.Buffer
		io := IOTuple{Reader: strings.NewReader(""), Writer: &out}

		err := RunGenerateKeys(context.Background(), io, "localsecrets", "", 210000)
		assert.Error(t, err)
	})

	t.Run("iterations below the floor are rejected", func(t *testing.T) {
		var out bytes.Buffer
		io := IOTuple{Reader: strings.NewReader(""), Writer: &out}

		err := RunGenerateKeys(context.Background(), io, "", "", 50000)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--iterations")
	})
}
