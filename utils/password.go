package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// bcrypt work factors per account type
const (
	AdminPasswordCost  = 12
	DriverPasswordCost = 10
)

// HashPassword hashes a plain-text password with the given cost.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether password matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
