package utils

import (
	"net/mail"
	"regexp"
	"strings"
)

var (
	tcPattern   = regexp.MustCompile(`^\d{11}$`)
	ibanPattern = regexp.MustCompile(`^TR\d{24}$`)
)

// IsValidTC reports whether input has the shape of a TC Kimlik No: exactly
// eleven digits. The checksum digits are not verified.
func IsValidTC(input string) bool {
	return tcPattern.MatchString(input)
}

// IsValidIBAN reports whether input is a Turkish IBAN: "TR" followed by
// exactly 24 digits, without spaces.
func IsValidIBAN(input string) bool {
	return ibanPattern.MatchString(input)
}

// NormalizeIBAN removes whitespace and upper-cases the input, so the grouped
// form "tr33 0006 1005 ..." can be checked with IsValidIBAN.
func NormalizeIBAN(input string) string {
	return strings.ToUpper(strings.Join(strings.Fields(input), ""))
}

// IsValidEmail reports whether input is a single bare e-mail address.
func IsValidEmail(input string) bool {
	addr, err := mail.ParseAddress(input)
	return err == nil && addr.Address == input
}
