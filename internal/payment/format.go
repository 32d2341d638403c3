package payment

import "strings"

// Input formatters mirroring the payment form's as-you-type normalization.
// They are lossy on purpose: excess characters are clamped, not rejected.

// FormatCardNumber strips non-digits and groups the first sixteen digits into
// blocks of four. Fewer than four digits pass through ungrouped.
func FormatCardNumber(value string) string {
	digits := digitsOnly(value)
	if len(digits) < 4 {
		return digits
	}
	if len(digits) > 16 {
		digits = digits[:16]
	}

	var parts []string
	for i := 0; i < len(digits); i += 4 {
		end := i + 4
		if end > len(digits) {
			end = len(digits)
		}
		parts = append(parts, digits[i:end])
	}
	return strings.Join(parts, " ")
}

// FormatExpiry strips non-digits and inserts the slash after the month once two
// digits are present, clamping to MM/YY.
func FormatExpiry(value string) string {
	digits := digitsOnly(value)
	if len(digits) < 2 {
		return digits
	}
	if len(digits) > 4 {
		digits = digits[:4]
	}
	return digits[:2] + "/" + digits[2:]
}

// SanitizeCVV keeps at most four digits.
func SanitizeCVV(value string) string {
	digits := digitsOnly(value)
	if len(digits) > 4 {
		digits = digits[:4]
	}
	return digits
}

// SanitizeZip keeps digits and hyphens, clamped to ten characters.
func SanitizeZip(value string) string {
	var b strings.Builder
	for _, r := range value {
		if (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
		if b.Len() == 10 {
			break
		}
	}
	return b.String()
}

func digitsOnly(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
