package enums

import "strings"

// CardType is the display label derived from a card number's leading digit.
// It carries no validation weight.
type CardType string

const (
	CardTypeVisa       CardType = "Visa"
	CardTypeMastercard CardType = "Mastercard"
	CardTypeAmex       CardType = "American Express"
	CardTypeGeneric    CardType = "Card"
)

// String implements fmt.Stringer.
func (c CardType) String() string {
	return string(c)
}

// DetectCardType maps the leading digit of a (possibly spaced) card number to its
// display label.
func DetectCardType(cardNumber string) CardType {
	number := strings.ReplaceAll(cardNumber, " ", "")
	switch {
	case strings.HasPrefix(number, "4"):
		return CardTypeVisa
	case strings.HasPrefix(number, "5"), strings.HasPrefix(number, "2"):
		return CardTypeMastercard
	case strings.HasPrefix(number, "3"):
		return CardTypeAmex
	}
	return CardTypeGeneric
}
