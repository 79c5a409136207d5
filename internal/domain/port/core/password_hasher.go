package core

// PasswordHasher hashes and verifies user passwords
type PasswordHasher interface {
	// Hash returns an encoded hash of the password
	Hash(password string) (string, error)
	// Compare returns nil when the password matches the hash
	Compare(hash, password string) error
}
