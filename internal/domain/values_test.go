package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last+tag@sub.domain.org",
		"x@y.co",
	}
	for _, input := range valid {
		e, err := NewEmail(input)
		require.NoError(t, err, input)
		assert.Equal(t, input, e.String())
	}

	invalid := []string{
		"",
		"plainaddress",
		"@missing-local.com",
		"user@",
		"user@-bad.com",
	}
	for _, input := range invalid {
		_, err := NewEmail(input)
		require.Error(t, err, input)
		assert.True(t, IsKind(err, KindValidation), input)
	}
}

func TestNewPhone(t *testing.T) {
	valid := []string{"+12025550123", "12025550123", "123456789", "+491234567890"}
	for _, input := range valid {
		p, err := NewPhone(input)
		require.NoError(t, err, input)
		assert.Equal(t, input, p.String())
	}

	invalid := []string{"", "12345", "phone-number", "+1 202 555 0123", "1234567890123456"}
	for _, input := range invalid {
		_, err := NewPhone(input)
		require.Error(t, err, input)
	}
}

func TestNewFullNameTitleCases(t *testing.T) {
	n, err := NewFullName("john", "doe")
	require.NoError(t, err)
	assert.Equal(t, "John", n.FirstName())
	assert.Equal(t, "Doe", n.LastName())
	assert.Equal(t, "John Doe", n.String())
}

func TestNewFullNameAllowsCompoundNames(t *testing.T) {
	n, err := NewFullName("mary jane", "o'brien-smith")
	require.NoError(t, err)
	assert.Equal(t, "Mary Jane", n.FirstName())
}

func TestNewFullNameRejections(t *testing.T) {
	cases := map[string][2]string{
		"digits":   {"j0hn", "doe"},
		"empty":    {"", "doe"},
		"symbols":  {"john!", "doe"},
		"too long": {strings.Repeat("a", 51), "doe"},
	}
	for name, pair := range cases {
		_, err := NewFullName(pair[0], pair[1])
		require.Error(t, err, name)
		assert.True(t, IsKind(err, KindValidation), name)
	}
}
