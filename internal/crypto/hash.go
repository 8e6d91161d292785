package crypto

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a plaintext password using bcrypt with a per-hash random
// salt. DefaultCost keeps a single verification in the ~100ms range on current
// hardware, which is the intended cost for interactive sign-in.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether a plaintext password matches the stored
// bcrypt hash.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
