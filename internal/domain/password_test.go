package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const strongPassword = "C0rrect-Horse-Battery!"

func TestNewPasswordHashesAndVerifies(t *testing.T) {
	p, err := NewPassword(strongPassword)
	require.NoError(t, err)

	assert.NotEqual(t, strongPassword, p.Hash())
	assert.Len(t, p.Hash(), bcryptHashLength)
	assert.True(t, p.Check(strongPassword))
	assert.False(t, p.Check("C0rrect-Horse-Battery?"))
}

func TestNewPasswordFormatRules(t *testing.T) {
	cases := map[string]string{
		"too short":  "Ab1!x",
		"no digit":   "Password!!",
		"no upper":   "password1!",
		"no lower":   "PASSWORD1!",
		"no special": "Password123",
		"weak":       "Password1!",
	}
	for name, input := range cases {
		_, err := NewPassword(input)
		require.Error(t, err, name)
		assert.True(t, IsKind(err, KindValidation), name)
	}
}

func TestNewPasswordAcceptsStoredHash(t *testing.T) {
	p, err := NewPassword(strongPassword)
	require.NoError(t, err)

	// A value matching the digest shape passes through unchanged
	again, err := NewPassword(p.Hash())
	require.NoError(t, err)
	assert.True(t, p.Equals(again))
}

func TestNewPasswordFromHash(t *testing.T) {
	p, err := NewPassword(strongPassword)
	require.NoError(t, err)

	loaded, err := NewPasswordFromHash(p.Hash())
	require.NoError(t, err)
	assert.True(t, loaded.Check(strongPassword))

	_, err = NewPasswordFromHash("definitely-not-a-bcrypt-digest")
	require.Error(t, err)
}

func TestPasswordStringNeverLeaks(t *testing.T) {
	p, err := NewPassword(strongPassword)
	require.NoError(t, err)
	assert.Equal(t, "********", p.String())
}
