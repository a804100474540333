package validate

import (
	"regexp"
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// IsEmail reports whether s looks like an e-mail address. Used for PayPal
// payout details.
func IsEmail(s string) bool {
	return emailRe.MatchString(s)
}

// IsCardNumber reports whether s is a Luhn-valid card or account number.
func IsCardNumber(s string) bool {
	s = strings.ReplaceAll(s, " ", "")
	err := goluhn.Validate(s)
	return err == nil
}

// IsCryptoAddress applies a loose shape check for wallet addresses:
// alphanumeric, between 26 and 90 characters.
func IsCryptoAddress(s string) bool {
	if len(s) < 26 || len(s) > 90 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		default:
			return false
		}
	}
	return true
}
