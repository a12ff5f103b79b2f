package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	digest, err := HashPassword("C0rrect-Horse-Battery!")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(digest, "$2"))
	assert.Len(t, digest, 60)

	assert.True(t, VerifyPassword("C0rrect-Horse-Battery!", digest))
	assert.False(t, VerifyPassword("wrong", digest))
}

func TestHashPasswordSalts(t *testing.T) {
	a, err := HashPassword("C0rrect-Horse-Battery!")
	require.NoError(t, err)
	b, err := HashPassword("C0rrect-Horse-Battery!")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestPasswordScore(t *testing.T) {
	assert.Less(t, PasswordScore("password"), MinPasswordScore)
	assert.GreaterOrEqual(t, PasswordScore("C0rrect-Horse-Battery!"), MinPasswordScore)
}
