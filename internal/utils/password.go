package utils

import (
	"errors"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// MinOwnerPasswordLength is the shortest owner password hash-password accepts.
const MinOwnerPasswordLength = 8

// ErrWeakPassword is returned for owner passwords shorter than MinOwnerPasswordLength.
var ErrWeakPassword = errors.New("owner password must be at least 8 characters")

// HashPassword produces the bcrypt hash stored in ADMIN_PASSWORD_HASH for the farm owner.
func HashPassword(password string) (string, error) {
	if utf8.RuneCountInString(password) < MinOwnerPasswordLength {
		return "", ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPasswordHash reports whether password matches the owner hash. An unset hash means
// login is disabled, so nothing matches it.
func CheckPasswordHash(password, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
