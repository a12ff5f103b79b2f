package domain

import "github.com/google/uuid"

// Uuid is a validated identifier. The zero value is not valid; instances
// come from NewUuid or GenerateUuid only.
type Uuid struct {
	value string
}

// NewUuid parses s as a canonical UUID. An empty string generates a
// fresh identifier, mirroring how entity IDs are minted on creation.
func NewUuid(s string) (Uuid, error) {
	if s == "" {
		return GenerateUuid(), nil
	}

	parsed, err := uuid.Parse(s)
	if err != nil {
		return Uuid{}, NewValidationError("Invalid UUID provided")
	}

	return Uuid{value: parsed.String()}, nil
}

// GenerateUuid returns a fresh random identifier
func GenerateUuid() Uuid {
	return Uuid{value: uuid.NewString()}
}

func (u Uuid) String() string {
	return u.value
}

func (u Uuid) Equals(other Uuid) bool {
	return u.value == other.value
}
