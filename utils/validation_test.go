package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"9876543210",
		"6123456789",
		"+919876543210",
		"98765 43210",
		"98765-43210",
	}
	for _, phone := range valid {
		assert.True(t, ValidatePhone(phone), "expected %q to be valid", phone)
	}

	invalid := []string{
		"",
		"12345",
		"1234567890",  // starts below 6
		"98765432101", // 11 digits
		"abcdefghij",
		"+449876543210",
	}
	for _, phone := range invalid {
		assert.False(t, ValidatePhone(phone), "expected %q to be invalid", phone)
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "9876543210", NormalizePhone("+91 98765 43210"))
	assert.Equal(t, "9876543210", NormalizePhone("9876543210"))
}

func TestValidateClock(t *testing.T) {
	assert.True(t, ValidateClock("09:30"))
	assert.True(t, ValidateClock("23:59"))
	assert.True(t, ValidateClock("00:00"))

	assert.False(t, ValidateClock("24:00"))
	assert.False(t, ValidateClock("9:30"))
	assert.False(t, ValidateClock("09:60"))
	assert.False(t, ValidateClock("0930"))
	assert.False(t, ValidateClock(""))
}
