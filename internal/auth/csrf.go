package auth

import (
	"crypto/subtle"

	"github.com/google/uuid"
)

func GenerateCsrfToken() string {
	return uuid.NewString()
}

// ValidateCsrfToken compares the session's token against the submitted one
// in constant time. Empty input or a length mismatch is a plain false,
// never an error.
func ValidateCsrfToken(sessionToken, formToken string) bool {
	if sessionToken == "" || formToken == "" {
		return false
	}
	if len(sessionToken) != len(formToken) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(sessionToken), []byte(formToken)) == 1
}
