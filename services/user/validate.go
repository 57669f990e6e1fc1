package user

import (
	"regexp"
	"unicode"
)

var usernameFormat = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// IsValidUsername reports whether the username contains only letters and
// numbers.
func IsValidUsername(username string) bool {
	return usernameFormat.MatchString(username)
}

// IsStrongPassword reports whether the password is at least 8 characters
// and contains a lowercase letter, an uppercase letter and a digit.
func IsStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasLower, hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLower && hasUpper && hasDigit
}
