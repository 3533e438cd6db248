package utils

import "golang.org/x/crypto/bcrypt"

// Account passwords are only checked at login, so the default work factor is
// plenty.
const hashCost = bcrypt.DefaultCost

// HashPassword derives a bcrypt hash for storage in the users table.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether password matches the stored hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
