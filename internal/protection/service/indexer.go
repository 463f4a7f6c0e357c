package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// hmacIndexer implements SearchIndexer with HMAC-SHA256 keyed by the pepper.
//
// The digest is deterministic for one (context, canonical value) pair and
// one-way: without the pepper it cannot be inverted or even recomputed. The
// context label is bound into the input with a NUL separator so the same raw
// value indexed under two field types yields unrelated digests.
type hmacIndexer struct {
	pepper []byte
}

// NewSearchIndexer creates a SearchIndexer keyed by the given pepper.
func NewSearchIndexer(pepper []byte) SearchIndexer {
	return &hmacIndexer{pepper: pepper}
}

// Hash computes hex(HMAC-SHA256(pepper, lower(context) || 0x00 || canonical)).
func (h *hmacIndexer) Hash(canonical, contextLabel string) string {
	mac := hmac.New(sha256.New, h.pepper)
	mac.Write([]byte(strings.ToLower(contextLabel)))
	mac.Write([]byte{0})
	mac.Write([]byte(canonical))
	return hex.EncodeToString(mac.Sum(nil))
}

// Equal compares two digests in constant time.
func (h *hmacIndexer) Equal(a, b string) bool {
	// Length leaks nothing here: digests are fixed width.
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
