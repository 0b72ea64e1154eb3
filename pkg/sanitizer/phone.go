package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const (
	PhoneDigits = 10

	defaultRegion = "US"
)

func OnlyDigits(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// FormatPhoneNumber renders up to ten digits of s as (DDD) DDD-DDDD.
// Shorter inputs produce a partial mask; extra digits are dropped.
func FormatPhoneNumber(s string) string {
	digits := OnlyDigits(s)
	if len(digits) > PhoneDigits {
		digits = digits[:PhoneDigits]
	}

	switch {
	case len(digits) <= 3:
		return digits
	case len(digits) <= 6:
		return "(" + digits[:3] + ") " + digits[3:]
	default:
		return "(" + digits[:3] + ") " + digits[3:6] + "-" + digits[6:]
	}
}

// NormalizePhone converts a ten-digit US number to E.164. It returns "" when
// the input does not carry exactly ten digits or cannot be parsed.
func NormalizePhone(phone string) string {
	digits := OnlyDigits(phone)
	if len(digits) != PhoneDigits {
		return ""
	}

	parsed, err := phonenumbers.Parse(digits, defaultRegion)
	if err != nil {
		return ""
	}
	return phonenumbers.Format(parsed, phonenumbers.E164)
}
