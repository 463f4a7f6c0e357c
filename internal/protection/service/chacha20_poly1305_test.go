package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChaCha20Poly1305(t *testing.T) {
	t.Run("accepts a 32-byte key", func(t *testing.T) {
		cipher, err := NewChaCha20Poly1305(testKey(t))
		assert.NoError(t, err)
		assert.NotNil(t, cipher)
	})

	t.Run("rejects other key sizes", func(t *testing.T) {
		_, err := NewChaCha20Poly1305(make([]byte, 16))
		assert.Error(t, err)
	})
}

func TestChaCha20Poly1305EncryptDecrypt(t *testing.T) {
	cipher, err := NewChaCha20Poly1305(testKey(t))
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		plaintext := []byte("sealed identifier")
		ciphertext, nonce, err := cipher.Encrypt(plaintext, nil)
		require.NoError(t, err)
		assert.Len(t, nonce, 12)

		decrypted, err := cipher.Decrypt(ciphertext, nonce, nil)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	})

	t.Run("aad mismatch fails", func(t *testing.T) {
		ciphertext, nonce, err := cipher.Encrypt([]byte("payload"), []byte("aad"))
		require.NoError(t, err)

		_, err = cipher.Decrypt(ciphertext, nonce, []byte("other"))
		assert.Error(t, err)
	})

	t.Run("tamper detection", func(t *testing.T) {
		ciphertext, nonce, err := cipher.Encrypt([]byte("payload"), nil)
		require.NoError(t, err)

		ciphertext[len(ciphertext)-1] ^= 0x01
		_, err = cipher.Decrypt(ciphertext, nonce, nil)
		assert.Error(t, err)
	})
}
