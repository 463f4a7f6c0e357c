package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeterministicAESGCM(t *testing.T) {
	t.Run("accepts a 32-byte key", func(t *testing.T) {
		cipher, err := NewDeterministicAESGCM(testKey(t))
		assert.NoError(t, err)
		assert.NotNil(t, cipher)
	})

	t.Run("rejects other key sizes", func(t *testing.T) {
		_, err := NewDeterministicAESGCM(make([]byte, 24))
		assert.Error(t, err)
	})
}

func TestDeterministicAESGCMSealOpen(t *testing.T) {
	cipher, err := NewDeterministicAESGCM(testKey(t))
	require.NoError(t, err)

	nonce := []byte("twelve-bytes")
	aad := []byte("email")

	t.Run("identical input yields identical output", func(t *testing.T) {
		first, err := cipher.Seal(nonce, []byte("student@mouau.edu.ng"), aad)
		require.NoError(t, err)
		second, err := cipher.Seal(nonce, []byte("student@mouau.edu.ng"), aad)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("round trip", func(t *testing.T) {
		sealed, err := cipher.Seal(nonce, []byte("+2348031234567"), aad)
		require.NoError(t, err)

		plaintext, err := cipher.Open(nonce, sealed, aad)
		require.NoError(t, err)
		assert.Equal(t, []byte("+2348031234567"), plaintext)
	})

	t.Run("rejects wrong nonce size", func(t *testing.T) {
		_, err := cipher.Seal([]byte("short"), []byte("x"), nil)
		assert.Error(t, err)
	})

	t.Run("aad binds the field type", func(t *testing.T) {
		sealed, err := cipher.Seal(nonce, []byte("12345678901"), []byte("nin"))
		require.NoError(t, err)

		_, err = cipher.Open(nonce, sealed, []byte("jamb"))
		assert.Error(t, err)
	})

	t.Run("tamper detection", func(t *testing.T) {
		sealed, err := cipher.Seal(nonce, []byte("payload"), aad)
		require.NoError(t, err)

		sealed[0] ^= 0x80
		_, err = cipher.Open(nonce, sealed, aad)
		assert.Error(t, err)
	})
}
