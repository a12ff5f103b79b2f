// Package validators contains the field-level rule checks invoked by use
// cases before any mutation. They never touch storage themselves.
package validators

import (
	"time"

	"homekeep/organizer-api/internal/domain"
)

// MinimumAge is the youngest a user may be at registration, in years
const MinimumAge = 16

// BirthDateValidator checks that the date is not in the future and that
// the user is at least MinimumAge years old. It compares calendar
// components so the result doesn't shift with now's time zone.
func BirthDateValidator(birthDate time.Time, now time.Time) error {
	year, month, day := birthDate.Date()
	nowYear, nowMonth, nowDay := now.Date()

	if year > nowYear ||
		(year == nowYear && (month > nowMonth || (month == nowMonth && day > nowDay))) {
		return domain.NewValidationError("Birth date can't be in the future")
	}

	age := nowYear - year
	if nowMonth < month || (nowMonth == month && nowDay < day) {
		age--
	}

	if age < MinimumAge {
		return domain.NewValidationError("You must be at least 16 years old to register")
	}

	return nil
}
