package utils

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns a bcrypt hash of password. Values that already are
// bcrypt hashes are returned unchanged so a record can be re-saved without
// hashing its hash.
func HashPassword(password string) (string, error) {
	if IsPasswordHash(password) {
		return password, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func IsPasswordHash(value string) bool {
	if len(value) != 60 {
		return false
	}
	_, err := bcrypt.Cost([]byte(value))
	return err == nil && strings.HasPrefix(value, "$2")
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
