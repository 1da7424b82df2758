package auth

import "golang.org/x/crypto/bcrypt"

// Work factor for stored user passwords and the demo accounts.
const bcryptCost = 8

// HashPassword returns the bcrypt hash stored in users.password_hash.
// Passwords longer than 72 bytes are rejected by bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches a stored hash. A user
// without a hash never matches.
func VerifyPassword(passwordHash, password string) bool {
	if passwordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) == nil
}
