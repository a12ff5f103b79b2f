package domain

import (
	"regexp"
	"strings"

	"homekeep/organizer-api/pkg/security"
)

// bcrypt digests are always 60 bytes with a fixed version prefix. Anything
// matching that shape is treated as already hashed and stored unchanged.
const bcryptHashLength = 60

var (
	digitRegex   = regexp.MustCompile(`\d`)
	upperRegex   = regexp.MustCompile(`[A-Z]`)
	lowerRegex   = regexp.MustCompile(`[a-z]`)
	specialRegex = regexp.MustCompile(`[\W_]`)
)

// Password always holds the hashed representation. NewPassword validates
// and hashes a plaintext; NewPasswordFromHash accepts a stored digest.
type Password struct {
	digest string
}

func NewPassword(plain string) (Password, error) {
	if isHashed(plain) {
		return Password{digest: plain}, nil
	}

	if err := validatePasswordFormat(plain); err != nil {
		return Password{}, err
	}

	digest, err := security.HashPassword(plain)
	if err != nil {
		return Password{}, NewOperationFailedError("Failed to hash password")
	}

	return Password{digest: digest}, nil
}

// NewPasswordFromHash wraps a digest loaded from storage
func NewPasswordFromHash(digest string) (Password, error) {
	if !isHashed(digest) {
		return Password{}, NewValidationError("Stored password is not a valid hash")
	}

	return Password{digest: digest}, nil
}

// Check compares a candidate plaintext against the stored digest
func (p Password) Check(plain string) bool {
	return security.VerifyPassword(plain, p.digest)
}

func (p Password) Hash() string {
	return p.digest
}

func (p Password) String() string {
	return "********"
}

func (p Password) Equals(other Password) bool {
	return p.digest == other.digest
}

func isHashed(s string) bool {
	return (strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$")) && len(s) == bcryptHashLength
}

func validatePasswordFormat(plain string) error {
	if len(plain) < 8 {
		return NewValidationError("Password must be at least 8 characters long")
	}

	if !digitRegex.MatchString(plain) {
		return NewValidationError("Password must contain at least one digit")
	}

	if !upperRegex.MatchString(plain) {
		return NewValidationError("Password must contain at least one uppercase letter")
	}

	if !lowerRegex.MatchString(plain) {
		return NewValidationError("Password must contain at least one lowercase letter")
	}

	if !specialRegex.MatchString(plain) {
		return NewValidationError("Password must contain at least one special character")
	}

	if security.PasswordScore(plain) < security.MinPasswordScore {
		return NewValidationError("Password is too weak")
	}

	return nil
}
