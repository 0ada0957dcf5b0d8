package notify

import "strings"

// NormalizePhone strips everything but digits and prefixes the country code to
// ten digit local numbers. Numbers outside 10 to 15 digits are rejected.
func NormalizePhone(raw, defaultCountryCode string) (string, bool) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := strings.TrimLeft(b.String(), "0")
	if len(digits) == 10 && !strings.HasPrefix(strings.TrimSpace(raw), "+") {
		digits = defaultCountryCode + digits
	}
	if len(digits) < 10 || len(digits) > 15 {
		return "", false
	}
	return digits, true
}
