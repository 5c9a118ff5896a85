// Package phoneutil formats and validates Brazilian phone numbers.
// Canonical display format: +55 (DDD) XXXXX-XXXX.
package phoneutil

import (
	"fmt"
	"strconv"
	"strings"
)

// OnlyDigits strips everything that is not a decimal digit
func OnlyDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// stripCountryCode removes a leading 55 when the remainder still holds DDD + number
func stripCountryCode(digits string) string {
	if strings.HasPrefix(digits, "55") && len(digits) > 11 {
		return digits[2:]
	}
	return digits
}

// Format renders a phone number as +55 (DDD) XXXXX-XXXX.
// Invalid input is returned unchanged so stored values are never destroyed.
func Format(phone string) string {
	if phone == "" {
		return ""
	}

	digits := stripCountryCode(OnlyDigits(phone))

	// DDD + number is 10 digits for landlines and 11 for mobiles
	if len(digits) < 10 || len(digits) > 11 {
		return phone
	}

	ddd := digits[:2]
	if len(digits) == 11 {
		return fmt.Sprintf("+55 (%s) %s-%s", ddd, digits[2:7], digits[7:11])
	}
	return fmt.Sprintf("+55 (%s) %s-%s", ddd, digits[2:6], digits[6:10])
}

// IsValid reports whether the phone is a plausible Brazilian number
func IsValid(phone string) bool {
	digits := stripCountryCode(OnlyDigits(phone))

	if len(digits) < 10 || len(digits) > 11 {
		return false
	}

	ddd, err := strconv.Atoi(digits[:2])
	if err != nil || ddd < 11 || ddd > 99 {
		return false
	}

	// mobiles have 11 digits and start with 9 after the DDD
	if len(digits) == 11 && digits[2] != '9' {
		return false
	}

	return true
}

// ToWhatsApp converts a phone to the wa.me digit format (5511999999999)
func ToWhatsApp(phone string) string {
	digits := OnlyDigits(phone)

	if strings.HasPrefix(digits, "55") && len(digits) >= 12 {
		return digits
	}
	return "55" + digits
}
