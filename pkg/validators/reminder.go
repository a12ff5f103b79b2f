package validators

import (
	"time"

	"homekeep/organizer-api/internal/domain"
)

func ReminderTitleValidator(title string) error {
	if title == "" {
		return domain.NewValidationError("Reminder title can't be empty")
	}

	return nil
}

// RemindDateValidator rejects remind dates that precede the moment the
// reminder is created.
func RemindDateValidator(remindDate time.Time, now time.Time) error {
	if remindDate.Before(now) {
		return domain.NewValidationError("Remind date can't be in the past")
	}

	return nil
}
