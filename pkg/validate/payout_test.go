package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("user@example.com"))
	assert.False(t, IsEmail("not-an-email"))
	assert.False(t, IsEmail("user@"))
	assert.False(t, IsEmail(""))
}

func TestIsCardNumber(t *testing.T) {
	assert.True(t, IsCardNumber("4561261212345467"))
	assert.True(t, IsCardNumber("4561 2612 1234 5467"))
	assert.False(t, IsCardNumber("4561261212345468"))
	assert.False(t, IsCardNumber("abc"))
}

func TestIsCryptoAddress(t *testing.T) {
	assert.True(t, IsCryptoAddress("1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"))
	assert.False(t, IsCryptoAddress("short"))
	assert.False(t, IsCryptoAddress("1A1zP1eP5QGefi2DMPTfTL5SLmv7Divf!a"))
}
