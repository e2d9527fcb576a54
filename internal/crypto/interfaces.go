package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher turns plain-text passwords into one-way salted hashes and
// checks candidates against them. Implementations know nothing about users
// or storage.
type PasswordHasher interface {
	// Hash returns the encoded hash of password. The salt and cost are part
	// of the encoding, so the result can be stored as is.
	Hash(password string) (string, error)

	// Compare reports whether password matches hash. A mismatch is (false, nil);
	// an error means hash could not be read.
	Compare(hash, password string) (bool, error)
}
