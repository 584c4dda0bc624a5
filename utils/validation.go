// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var (
	phoneRegex = regexp.MustCompile(`^[6-9]\d{9}$`)
	clockRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// ValidatePhone checks for a 10-digit Indian mobile number
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.TrimPrefix(cleaned, "+91")

	return phoneRegex.MatchString(cleaned)
}

// NormalizePhone strips spacing and an optional +91 prefix
func NormalizePhone(phone string) string {
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	return strings.TrimPrefix(cleaned, "+91")
}

// ValidateClock checks an HH:mm 24-hour time string
func ValidateClock(value string) bool {
	return clockRegex.MatchString(value)
}
