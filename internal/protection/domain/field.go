package domain

// ProtectedField is the storage-safe representation of one plaintext value.
//
// Ciphertext is a single self-describing string: it encodes everything needed
// to reverse the value (nonce and authentication tag alongside the encrypted
// bytes) in the tier's wire format. SearchHash is set only for searchable
// tiers and holds the keyed, context-bound digest the caller may index for
// equality lookup.
//
// Values are created once per write and are immutable; an empty Ciphertext
// with an empty SearchHash is the marker for protecting empty input.
type ProtectedField struct {
	Ciphertext string
	SearchHash string
}

// Empty reports whether the field is the empty-input marker.
func (f ProtectedField) Empty() bool {
	return f.Ciphertext == "" && f.SearchHash == ""
}
