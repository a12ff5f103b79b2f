package validators

import "homekeep/organizer-api/internal/domain"

const (
	maxTitleLength   = 200
	maxContentLength = 2500
)

func NoteTitleValidator(title string) error {
	if title == "" {
		return domain.NewValidationError("Note title can't be empty")
	}

	if len(title) > maxTitleLength {
		return domain.NewValidationError("Note title is too long")
	}

	return nil
}

func NoteContentValidator(content string) error {
	if content == "" {
		return domain.NewValidationError("Note content can't be empty")
	}

	if len(content) > maxContentLength {
		return domain.NewValidationError("Note content is too long")
	}

	return nil
}

func TagNameValidator(name string) error {
	if name == "" {
		return domain.NewValidationError("Tag name can't be empty")
	}

	if len(name) > maxTitleLength {
		return domain.NewValidationError("Tag name is too long")
	}

	return nil
}
