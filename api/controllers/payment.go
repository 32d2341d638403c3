package controllers

import (
	"net/http"
	"time"

	"github.com/danielavega/shopfront-backend/api/responses"
	"github.com/danielavega/shopfront-backend/api/validators"
	"github.com/danielavega/shopfront-backend/internal/payment"
	"github.com/danielavega/shopfront-backend/pkg/enums"
	"github.com/danielavega/shopfront-backend/pkg/logger"
)

// PaymentValidate dry-runs the payment field rules without settling anything.
// Always 200; the verdict and per-field messages are the payload.
func PaymentValidate(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var fields payment.Fields
		if err := validators.DecodeJSONBody(r, &fields); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		validation := payment.Validate(fields, time.Now())
		responses.WriteSuccess(w, map[string]any{
			"validation": validation,
			"card_type":  enums.DetectCardType(fields.CardNumber).String(),
		})
	}
}

type paymentFormatRequest struct {
	CardNumber string `json:"card_number"`
	Expiry     string `json:"expiry_date"`
	CVV        string `json:"cvv"`
	BillingZip string `json:"billing_zip"`
}

// PaymentFormat normalizes raw form input the way the payment form does as the
// shopper types: card digits grouped in fours, the expiry slash inserted, CVV
// and ZIP clamped.
func PaymentFormat(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload paymentFormatRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{
			"card_number": payment.FormatCardNumber(payload.CardNumber),
			"expiry_date": payment.FormatExpiry(payload.Expiry),
			"cvv":         payment.SanitizeCVV(payload.CVV),
			"billing_zip": payment.SanitizeZip(payload.BillingZip),
			"card_type":   enums.DetectCardType(payload.CardNumber).String(),
		})
	}
}
