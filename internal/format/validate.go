package format

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	emailRe  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe  = regexp.MustCompile(`^(\+27|0)[6-8][0-9]{8}$`)
	postalRe = regexp.MustCompile(`^[0-9]{4}$`)
)

func IsValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// IsValidPhoneNumber accepts South African mobile numbers in local (0...)
// or international (+27...) form. Whitespace is ignored.
func IsValidPhoneNumber(s string) bool {
	return phoneRe.MatchString(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s))
}

// IsValidPostalCode accepts four-digit South African postal codes.
func IsValidPostalCode(s string) bool {
	return postalRe.MatchString(s)
}
