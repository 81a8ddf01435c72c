// Package phone normalizes and validates Pakistani mobile numbers for the
// phone-number step. Three raw shapes are accepted and all collapse to the
// single canonical stored form "+92 - 3XXXXXXXXX":
//
//	923001234567  (country code + mobile number)
//	03001234567   (trunk zero + mobile number)
//	3001234567    (bare mobile number)
package phone

import (
	"errors"
	"strings"
)

// ErrInvalidNumber indicates the input matches none of the accepted shapes.
var ErrInvalidNumber = errors.New("phone: invalid number")

const countryCode = "92"

// Digits strips every non-digit character from raw.
func Digits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Format produces the live display form while the user types. It mirrors the
// canonical layout ("+92 - " followed by the local digits) without requiring
// the number to be complete yet.
func Format(raw string) string {
	digits := Digits(raw)
	if digits == "" {
		return ""
	}

	var local string
	switch {
	case strings.HasPrefix(digits, countryCode):
		local = digits[len(countryCode):]
	case strings.HasPrefix(digits, "0"):
		local = digits[1:]
	default:
		local = digits
	}

	if local == "" {
		return "+92"
	}
	return "+92 - " + local
}

// Validate checks raw against the three accepted shapes. Anything else,
// including a digit count that matches no shape exactly, is rejected.
func Validate(raw string) error {
	digits := Digits(raw)

	switch {
	case len(digits) == 12 && strings.HasPrefix(digits, countryCode) && digits[2] == '3':
		return nil
	case len(digits) == 11 && strings.HasPrefix(digits, "03"):
		return nil
	case len(digits) == 10 && digits[0] == '3':
		return nil
	}
	return ErrInvalidNumber
}

// Canonical validates raw and returns the single stored form. The result is
// identical regardless of which accepted shape was entered.
func Canonical(raw string) (string, error) {
	if err := Validate(raw); err != nil {
		return "", err
	}

	digits := Digits(raw)
	switch {
	case len(digits) == 12:
		digits = digits[2:]
	case len(digits) == 11:
		digits = digits[1:]
	}
	return "+92 - " + digits, nil
}
