package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidUsername(t *testing.T) {
	assert.True(t, IsValidUsername("alice42"))
	assert.True(t, IsValidUsername("Bob"))
	assert.False(t, IsValidUsername("alice 42"), "spaces are not allowed")
	assert.False(t, IsValidUsername("alice_42"), "underscores are not allowed")
	assert.False(t, IsValidUsername("alice@example"), "symbols are not allowed")
	assert.False(t, IsValidUsername(""))
}

func TestIsStrongPassword(t *testing.T) {
	assert.True(t, IsStrongPassword("Abcdefg1"))
	assert.True(t, IsStrongPassword("longerPassword9"))
	assert.False(t, IsStrongPassword("Abcdef1"), "under 8 characters")
	assert.False(t, IsStrongPassword("abcdefg1"), "no uppercase letter")
	assert.False(t, IsStrongPassword("ABCDEFG1"), "no lowercase letter")
	assert.False(t, IsStrongPassword("Abcdefgh"), "no digit")
}
