package controllers

import (
	"net/http"

	"github.com/danielavega/shopfront-backend/api/middleware"
	"github.com/danielavega/shopfront-backend/api/responses"
	"github.com/danielavega/shopfront-backend/api/validators"
	"github.com/danielavega/shopfront-backend/internal/checkout"
	"github.com/danielavega/shopfront-backend/internal/payment"
	pkgerrors "github.com/danielavega/shopfront-backend/pkg/errors"
	"github.com/danielavega/shopfront-backend/pkg/logger"
)

// CheckoutState serves the flow snapshot with totals derived from the cart.
func CheckoutState(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := middleware.SessionFromContext(r.Context())
		if s == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing"))
			return
		}

		var state checkout.State
		_ = s.Do(func() error {
			state = s.Checkout.State()
			return nil
		})
		responses.WriteSuccess(w, state)
	}
}

// CheckoutBegin starts a fresh flow at the shipping step.
func CheckoutBegin(logg *logger.Logger) http.HandlerFunc {
	return flowMutation(logg, func(s sessionFlow) error { return s.Begin() })
}

// CheckoutAdvance moves one step forward, clamped at review.
func CheckoutAdvance(logg *logger.Logger) http.HandlerFunc {
	return flowMutation(logg, func(s sessionFlow) error { return s.Advance() })
}

// CheckoutRetreat moves one step back, clamped at shipping.
func CheckoutRetreat(logg *logger.Logger) http.HandlerFunc {
	return flowMutation(logg, func(s sessionFlow) error { return s.Retreat() })
}

// CheckoutExit abandons the flow without touching the cart.
func CheckoutExit(logg *logger.Logger) http.HandlerFunc {
	return flowMutation(logg, func(s sessionFlow) error {
		s.Exit()
		return nil
	})
}

type sessionFlow = *checkout.Flow

func flowMutation(logg *logger.Logger, op func(sessionFlow) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := middleware.SessionFromContext(r.Context())
		if s == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing"))
			return
		}

		var state checkout.State
		err := s.Do(func() error {
			if err := op(s.Checkout); err != nil {
				return err
			}
			state = s.Checkout.State()
			return nil
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, state)
	}
}

type checkoutDraftRequest struct {
	Shipping checkout.ShippingDetails `json:"shipping"`
	Payment  payment.Fields           `json:"payment"`
}

// CheckoutDraft replaces the checkout form contents.
func CheckoutDraft(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := middleware.SessionFromContext(r.Context())
		if s == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing"))
			return
		}

		var payload checkoutDraftRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var state checkout.State
		err := s.Do(func() error {
			if err := s.Checkout.UpdateDraft(checkout.Draft{
				Shipping: payload.Shipping,
				Payment:  payload.Payment,
			}); err != nil {
				return err
			}
			state = s.Checkout.State()
			return nil
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, state)
	}
}

// CheckoutPlaceOrder validates the draft's payment fields and settles the
// charge. A decline maps to 402 with the decline reason in the details; an
// approval returns the order confirmation.
func CheckoutPlaceOrder(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := middleware.SessionFromContext(r.Context())
		if s == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing"))
			return
		}

		var result checkout.PlacementResult
		err := s.Do(func() error {
			var err error
			result, err = s.Checkout.PlaceOrder(r.Context())
			return err
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if result.Decline != nil {
			declineErr := pkgerrors.New(pkgerrors.CodePaymentDeclined, result.Decline.Message).
				WithDetails(map[string]any{"reason": result.Decline.Reason.String()})
			responses.WriteError(r.Context(), logg, w, declineErr)
			return
		}

		if logg != nil {
			ctx := logg.WithField(r.Context(), "order_id", result.Order.ID)
			logg.Info(ctx, "checkout.order_placed")
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, result.Order)
	}
}
