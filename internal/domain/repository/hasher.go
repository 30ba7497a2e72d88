package repository

// PasswordHasher capacidad externa de hashing unidireccional con salt.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Compare(plaintext, hashed string) bool
}
