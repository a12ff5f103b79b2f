package domain

import "regexp"

var phoneRegex = regexp.MustCompile(`^\+?1?\d{9,15}$`)

// Phone is a validated phone number
type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	if !phoneRegex.MatchString(s) {
		return Phone{}, NewValidationError("Invalid phone number provided")
	}

	return Phone{value: s}, nil
}

func (p Phone) String() string {
	return p.value
}

func (p Phone) Equals(other Phone) bool {
	return p.value == other.value
}
