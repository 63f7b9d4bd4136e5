package utils

import (
	"regexp"
	"strings"
)

var (
	nonDigitPattern    = regexp.MustCompile(`\D`)
	mobilePhonePattern = regexp.MustCompile(`^5\d{9}$`)
)

// NormalizePhone reduces a Turkish phone number to its subscriber digits.
//
// Every non-digit is removed, then the national trunk prefix "0" and the
// country code "90" are stripped from the front until neither is left, so
// "0539 217 47 82", "+90 539 217 47 82" and "5392174782" all become
// "5392174782". Malformed input is returned as a best-effort digit string.
// NormalizePhone is idempotent.
func NormalizePhone(input string) string {
	digits := nonDigitPattern.ReplaceAllString(input, "")
	for {
		switch {
		case strings.HasPrefix(digits, "0"):
			digits = digits[1:]
		case strings.HasPrefix(digits, "90") && len(digits) >= 12:
			digits = digits[2:]
		default:
			return digits
		}
	}
}

// IsValidPhone reports whether input is a Turkish mobile number: ten digits
// starting with 5 once normalized.
func IsValidPhone(input string) bool {
	return mobilePhonePattern.MatchString(NormalizePhone(input))
}
