// Package auth holds the two security primitives of the service: the
// bcrypt password hasher and the JWT token manager.
package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost is fixed at 10: roughly 60-100ms per hash on current
// hardware, the accepted balance between login latency and brute-force
// resistance. Changing it only affects newly stored hashes.
const bcryptCost = 10

// HashPassword returns a salted bcrypt digest of plain. The salt is
// randomized per call, so hashing the same password twice yields two
// different digests.
func HashPassword(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword reports whether plain matches digest. A malformed digest
// is treated as a mismatch, never an error.
func CheckPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
