// Package security contains everything related to the security of user data
package security

import (
	zxcvbn "github.com/nbutton23/zxcvbn-go"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordScore is the lowest zxcvbn score (0..4) accepted for a new password
const MinPasswordScore = 3

// HashPassword derives a one-way bcrypt digest from a plaintext password
func HashPassword(p string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(p), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// VerifyPassword compares a candidate plaintext against a stored bcrypt digest
func VerifyPassword(p, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(p)) == nil
}

// PasswordScore estimates password strength on the 0..4 zxcvbn scale
func PasswordScore(p string) int {
	return zxcvbn.PasswordStrength(p, nil).Score
}
