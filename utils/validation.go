// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var postalCodeRegex = regexp.MustCompile(`^\d{7}$`)

// ValidatePostalCode checks for a 7-digit Japanese postal code,
// with or without the separating hyphen.
func ValidatePostalCode(code string) bool {
	cleaned := strings.ReplaceAll(code, "-", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	return postalCodeRegex.MatchString(cleaned)
}

// NormalizePostalCode strips the hyphen for lookups against the address API.
func NormalizePostalCode(code string) string {
	return strings.ReplaceAll(strings.TrimSpace(code), "-", "")
}
