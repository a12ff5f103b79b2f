package domain

import "regexp"

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

// Email is a validated, immutable email address
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	if !emailRegex.MatchString(s) {
		return Email{}, NewValidationError("Invalid email address provided")
	}

	return Email{value: s}, nil
}

func (e Email) String() string {
	return e.value
}

func (e Email) Equals(other Email) bool {
	return e.value == other.value
}
