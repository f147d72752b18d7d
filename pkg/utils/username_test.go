package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	for _, valid := range []string{"abc", "user_123", "A1234567890123456789"} {
		assert.NoError(t, ValidateUsername(valid), "username: %q", valid)
	}

	for _, invalid := range []string{
		"ab",
		"a23456789012345678901",
		"user name",
		"user-name",
		"_leading",
		"émile",
	} {
		assert.Error(t, ValidateUsername(invalid), "username: %q", invalid)
	}
}

func TestNormalizeUsername(t *testing.T) {
	assert.Equal(t, "penguinfan", NormalizeUsername("  PenguinFan "))
}
