package auth

import "golang.org/x/crypto/bcrypt"

// dummyHash is a digest of an unguessable throwaway value. Comparing against
// it keeps the unknown-user login path as slow as the wrong-password path.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("listkeeper-timing-pad"), bcrypt.DefaultCost)

// HashPassword hashes a password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash checks a password against its stored digest.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// CompareDummy runs a comparison that always fails, for timing equalization.
func CompareDummy(password string) {
	bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}
