package hash

// Hash hashes plaintext secrets and verifies them against stored hashes.
type Hash interface {
	// Hash returns the hashed representation of plaintext.
	Hash(plaintext string) ([]byte, error)
	// Verify reports whether plaintext matches the hashed value.
	Verify(hashed, plaintext string) bool
}
