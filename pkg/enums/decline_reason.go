package enums

import "fmt"

// DeclineReason identifies why a mock settlement rejected a charge.
type DeclineReason string

const (
	DeclineCardDeclined          DeclineReason = "card_declined"
	DeclineSecurityCodeIncorrect DeclineReason = "security_code_incorrect"
	DeclineCardExpired           DeclineReason = "card_expired"
)

var validDeclineReasons = []DeclineReason{
	DeclineCardDeclined,
	DeclineSecurityCodeIncorrect,
	DeclineCardExpired,
}

// String implements fmt.Stringer.
func (d DeclineReason) String() string {
	return string(d)
}

// IsValid reports whether the value is a known DeclineReason.
func (d DeclineReason) IsValid() bool {
	for _, candidate := range validDeclineReasons {
		if candidate == d {
			return true
		}
	}
	return false
}

// Message returns the human-readable copy shown for the decline.
func (d DeclineReason) Message() string {
	switch d {
	case DeclineCardDeclined:
		return "Your card was declined. Please try a different payment method."
	case DeclineSecurityCodeIncorrect:
		return "Your card's security code is incorrect."
	case DeclineCardExpired:
		return "Your card has expired."
	}
	return "Payment processing failed"
}

// ParseDeclineReason converts raw input into a DeclineReason.
func ParseDeclineReason(value string) (DeclineReason, error) {
	for _, candidate := range validDeclineReasons {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid decline reason %q", value)
}
