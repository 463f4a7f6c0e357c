package domain

// Algorithm represents the cryptographic algorithm used by the sealed tier.
//
// Both supported algorithms provide Authenticated Encryption with Associated
// Data (AEAD) at a 256-bit security level with a 12-byte nonce and a 16-byte
// authentication tag. The searchable and basic tiers always use AES-GCM
// because their wire formats are fixed; the sealed tier may use either.
type Algorithm string

const (
	// AESGCM represents the AES-256-GCM authenticated encryption algorithm.
	// Preferred on CPUs with AES-NI hardware acceleration.
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 represents the ChaCha20-Poly1305 authenticated encryption
	// algorithm. Constant-time in software, preferred without AES-NI.
	ChaCha20 Algorithm = "chacha20-poly1305"
)

const (
	// KeySize is the required master key length in bytes (AES-256 and
	// ChaCha20-Poly1305 both take 256-bit keys).
	KeySize = 32

	// NonceSize is the AEAD nonce length in bytes for both algorithms.
	NonceSize = 12

	// TagSize is the AEAD authentication tag length in bytes.
	TagSize = 16

	// MinPasswordIterations is the floor for the PBKDF2 work factor. Records
	// below it are refused at verification time (downgrade protection) and
	// configurations below it are refused at startup.
	MinPasswordIterations = 100000
)
