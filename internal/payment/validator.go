package payment

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/multierr"

	pkgerrors "github.com/danielavega/shopfront-backend/pkg/errors"
)

// Field keys used in validation results and API error details.
const (
	FieldCardNumber = "card_number"
	FieldExpiry     = "expiry_date"
	FieldCVV        = "cvv"
	FieldNameOnCard = "name_on_card"
	FieldBillingZip = "billing_zip"
)

var (
	cardNumberPattern = regexp.MustCompile(`^\d{13,19}$`)
	expiryPattern     = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cvvPattern        = regexp.MustCompile(`^\d{3,4}$`)
	zipPattern        = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
)

// Fields is the payment form's raw input. Values arrive as typed, spaces and
// all; validation normalizes where the rules call for it.
type Fields struct {
	CardNumber string `json:"card_number"`
	Expiry     string `json:"expiry_date"`
	CVV        string `json:"cvv"`
	NameOnCard string `json:"name_on_card"`
	BillingZip string `json:"billing_zip"`
}

// StrippedCardNumber returns the card number with spaces removed.
func (f Fields) StrippedCardNumber() string {
	return strings.ReplaceAll(f.CardNumber, " ", "")
}

// Validation is the outcome of checking all payment fields at once. Every
// violated field appears in FieldErrors with its own message; a form with three
// bad fields reports all three in a single pass.
type Validation struct {
	Valid       bool              `json:"valid"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
}

// Err folds the field errors into a single validation error, or nil when the
// fields passed. The combined cause lists every violation; the per-field map
// rides along as details.
func (v Validation) Err() error {
	if v.Valid {
		return nil
	}
	var combined error
	for _, field := range []string{FieldCardNumber, FieldExpiry, FieldCVV, FieldNameOnCard, FieldBillingZip} {
		if msg, ok := v.FieldErrors[field]; ok {
			combined = multierr.Append(combined, fmt.Errorf("%s: %s", field, msg))
		}
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, combined, "payment details failed validation").
		WithDetails(v.FieldErrors)
}

// Validate applies every field rule and reports all violations together. The
// reference time anchors the expiry check to the current two-digit year and
// month.
func Validate(fields Fields, now time.Time) Validation {
	fieldErrors := map[string]string{}

	number := fields.StrippedCardNumber()
	switch {
	case number == "":
		fieldErrors[FieldCardNumber] = "Card number is required"
	case !cardNumberPattern.MatchString(number):
		fieldErrors[FieldCardNumber] = "Invalid card number"
	}

	if msg := validateExpiry(fields.Expiry, now); msg != "" {
		fieldErrors[FieldExpiry] = msg
	}

	switch {
	case fields.CVV == "":
		fieldErrors[FieldCVV] = "CVV is required"
	case !cvvPattern.MatchString(fields.CVV):
		fieldErrors[FieldCVV] = "Invalid CVV"
	}

	if strings.TrimSpace(fields.NameOnCard) == "" {
		fieldErrors[FieldNameOnCard] = "Name on card is required"
	}

	zip := strings.TrimSpace(fields.BillingZip)
	switch {
	case zip == "":
		fieldErrors[FieldBillingZip] = "Billing ZIP is required"
	case !zipPattern.MatchString(zip):
		fieldErrors[FieldBillingZip] = "Invalid ZIP code format"
	}

	if len(fieldErrors) == 0 {
		return Validation{Valid: true}
	}
	return Validation{FieldErrors: fieldErrors}
}

// validateExpiry checks MM/YY shape, month range, and that the pair is not in
// the past relative to now. Same-month cards are still valid.
func validateExpiry(expiry string, now time.Time) string {
	if expiry == "" {
		return "Expiry date is required"
	}
	if !expiryPattern.MatchString(expiry) {
		return "Invalid expiry date format"
	}

	parts := strings.SplitN(expiry, "/", 2)
	month, _ := strconv.Atoi(parts[0])
	year, _ := strconv.Atoi(parts[1])

	if month < 1 || month > 12 {
		return "Invalid month"
	}

	currentYear := now.Year() % 100
	currentMonth := int(now.Month())
	if year < currentYear || (year == currentYear && month < currentMonth) {
		return "Card has expired"
	}
	return ""
}
