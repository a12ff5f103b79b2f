package validators

import "homekeep/organizer-api/internal/domain"

func ProductNameValidator(name string) error {
	if name == "" {
		return domain.NewValidationError("Product name can't be empty")
	}

	return nil
}

func AmountValidator(amount int) error {
	if amount <= 0 {
		return domain.NewValidationError("Amount must be bigger than 0")
	}

	return nil
}
