// Package cryptox wraps password hashing for the rest of the application so
// the algorithm and cost factor are pinned in exactly one place.
package cryptox

import "golang.org/x/crypto/bcrypt"

// HashCost is the fixed bcrypt cost factor (2^10 rounds).
const HashCost = 10

// HashPassword generates a salted bcrypt hash of the plaintext password.
// The salt is generated by the library and encoded into the hash string.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password against a bcrypt hash using
// the library's own constant-time compare. Returns nil on match.
func VerifyPassword(password, encodedHash string) error {
	return bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
}
