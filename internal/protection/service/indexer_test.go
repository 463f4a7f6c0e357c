package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchIndexerHash(t *testing.T) {
	indexer := NewSearchIndexer([]byte("pepper-one"))

	t.Run("deterministic", func(t *testing.T) {
		first := indexer.Hash("student@mouau.edu.ng", "email")
		second := indexer.Hash("student@mouau.edu.ng", "email")

		assert.Equal(t, first, second)
		assert.Len(t, first, 64) // SHA-256 in hex
	})

	t.Run("context label separates field types", func(t *testing.T) {
		nin := indexer.Hash("12345678901", "nin")
		jamb := indexer.Hash("12345678901", "jamb")

		assert.NotEqual(t, nin, jamb)
	})

	t.Run("context label is case insensitive", func(t *testing.T) {
		assert.Equal(t, indexer.Hash("value", "email"), indexer.Hash("value", "EMAIL"))
	})

	t.Run("pepper keys the digest", func(t *testing.T) {
		other := NewSearchIndexer([]byte("pepper-two"))
		assert.NotEqual(t, indexer.Hash("value", "email"), other.Hash("value", "email"))
	})

	t.Run("label and value boundaries are unambiguous", func(t *testing.T) {
		// "ab"+"c" under label "x" must not collide with "a"+"bc".
		assert.NotEqual(t, indexer.Hash("c", "xab"), indexer.Hash("bc", "xa"))
	})
}

func TestSearchIndexerEqual(t *testing.T) {
	indexer := NewSearchIndexer([]byte("pepper"))
	digest := indexer.Hash("value", "email")

	assert.True(t, indexer.Equal(digest, digest))
	assert.False(t, indexer.Equal(digest, indexer.Hash("other", "email")))
	assert.False(t, indexer.Equal(digest, digest[:32]))
}
