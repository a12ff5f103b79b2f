package domain

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const maxNameLength = 50

var (
	nameRegex = regexp.MustCompile(`^[a-zA-Z]+(?:[-' ][a-zA-Z]+)*$`)
	titleCase = cases.Title(language.English)
)

// FullName is a validated first/last name pair, stored title-cased
type FullName struct {
	firstName string
	lastName  string
}

func NewFullName(firstName, lastName string) (FullName, error) {
	for _, name := range []string{firstName, lastName} {
		if !nameRegex.MatchString(name) {
			return FullName{}, NewValidationError("Name contains invalid characters")
		}

		if len(name) > maxNameLength {
			return FullName{}, NewValidationError("Name is too long")
		}
	}

	return FullName{
		firstName: titleCase.String(firstName),
		lastName:  titleCase.String(lastName),
	}, nil
}

func (f FullName) FirstName() string {
	return f.firstName
}

func (f FullName) LastName() string {
	return f.lastName
}

func (f FullName) String() string {
	return f.firstName + " " + f.lastName
}

func (f FullName) Equals(other FullName) bool {
	return f.firstName == other.firstName && f.lastName == other.lastName
}
