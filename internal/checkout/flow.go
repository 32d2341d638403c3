package checkout

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/danielavega/shopfront-backend/internal/cart"
	"github.com/danielavega/shopfront-backend/internal/identity"
	"github.com/danielavega/shopfront-backend/internal/payment"
	"github.com/danielavega/shopfront-backend/pkg/enums"
	pkgerrors "github.com/danielavega/shopfront-backend/pkg/errors"
	"github.com/danielavega/shopfront-backend/pkg/metrics"
)

// ShippingDetails is the address portion of the checkout draft.
type ShippingDetails struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country"`
}

// Draft is the in-progress checkout form. It survives step navigation and is
// discarded when the flow exits or a fresh one begins.
type Draft struct {
	Shipping ShippingDetails `json:"shipping"`
	Payment  payment.Fields  `json:"payment"`
}

// Order is the confirmation minted when a placement settles successfully.
type Order struct {
	ID       string         `json:"id"`
	PlacedAt time.Time      `json:"placed_at"`
	Email    string         `json:"email"`
	Lines    []cart.Line    `json:"lines"`
	Totals   Totals         `json:"totals"`
	CardType enums.CardType `json:"card_type"`
}

// State is the flow's read surface. Totals are derived from the live cart until
// the order is placed, after which the frozen order totals are authoritative.
type State struct {
	Active   bool               `json:"active"`
	Step     enums.CheckoutStep `json:"step"`
	Complete bool               `json:"complete"`
	Draft    Draft              `json:"draft"`
	Totals   Totals             `json:"totals"`
	Order    *Order             `json:"order,omitempty"`
}

// PlacementResult carries the outcome of a PlaceOrder call. Exactly one of
// Order and Decline is set; a decline is an expected outcome, not an error.
type PlacementResult struct {
	Order   *Order          `json:"order,omitempty"`
	Decline *payment.Result `json:"decline,omitempty"`
}

// Flow is the session's multi-step checkout. Steps move between shipping,
// payment, and review; only review can place the order. The owning session
// serializes access.
type Flow struct {
	ledger   *cart.Ledger
	identity *identity.Service
	settler  *payment.Settler
	m        *metrics.StorefrontMetrics
	now      func() time.Time

	active   bool
	complete bool
	step     enums.CheckoutStep
	draft    Draft
	order    *Order
}

// NewFlow builds a checkout flow over a session's cart and identity state.
// metrics may be nil.
func NewFlow(ledger *cart.Ledger, idSvc *identity.Service, settler *payment.Settler, m *metrics.StorefrontMetrics) (*Flow, error) {
	if ledger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "checkout flow requires a cart ledger")
	}
	if idSvc == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "checkout flow requires an identity service")
	}
	if settler == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "checkout flow requires a settler")
	}
	return &Flow{
		ledger:   ledger,
		identity: idSvc,
		settler:  settler,
		m:        m,
		now:      time.Now,
	}, nil
}

// Begin starts a fresh checkout at the shipping step. The draft is reset, with
// the email pre-filled from the authenticated user and the country defaulted.
// An empty cart cannot enter checkout.
func (f *Flow) Begin() error {
	if f.ledger.IsEmpty() {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "cannot begin checkout with an empty cart")
	}

	draft := Draft{Shipping: ShippingDetails{Country: "United States"}}
	if idState := f.identity.State(); idState.User != nil {
		draft.Shipping.Email = idState.User.Email
	}

	f.active = true
	f.complete = false
	f.step = enums.StepShipping
	f.draft = draft
	f.order = nil
	return nil
}

// Advance moves one step forward, clamped at review.
func (f *Flow) Advance() error {
	if err := f.requireInteractive(); err != nil {
		return err
	}
	if f.step < enums.LastCheckoutStep {
		f.step++
	}
	return nil
}

// Retreat moves one step back, clamped at shipping. Unlike Exit it keeps the
// flow and its draft alive.
func (f *Flow) Retreat() error {
	if err := f.requireInteractive(); err != nil {
		return err
	}
	if f.step > enums.FirstCheckoutStep {
		f.step--
	}
	return nil
}

// Exit abandons the flow. The cart is untouched; the draft is dropped.
func (f *Flow) Exit() {
	f.active = false
	f.complete = false
	f.draft = Draft{}
	f.order = nil
}

// UpdateDraft replaces the checkout form contents. Allowed at any interactive
// step; the form is shared across steps.
func (f *Flow) UpdateDraft(draft Draft) error {
	if err := f.requireInteractive(); err != nil {
		return err
	}
	f.draft = draft
	return nil
}

// PlaceOrder validates the payment fields and settles the charge for the
// cart's grand total. On approval the cart is cleared and the flow becomes
// complete, a terminal state. On decline the flow stays at review so the
// shopper can retry with different details.
func (f *Flow) PlaceOrder(ctx context.Context) (PlacementResult, error) {
	if err := f.requireInteractive(); err != nil {
		return PlacementResult{}, err
	}
	if f.step != enums.StepReview {
		return PlacementResult{}, pkgerrors.New(pkgerrors.CodeStateConflict, "order can only be placed from the review step")
	}
	if f.ledger.IsEmpty() {
		return PlacementResult{}, pkgerrors.New(pkgerrors.CodeStateConflict, "cannot place an order with an empty cart")
	}

	if v := payment.Validate(f.draft.Payment, f.now()); !v.Valid {
		return PlacementResult{}, v.Err()
	}

	snap := f.ledger.Snapshot()
	totals := ComputeTotals(snap.Total)

	result, err := f.settler.Settle(ctx, f.draft.Payment, totals.Total)
	if err != nil {
		return PlacementResult{}, err
	}
	if !result.Approved {
		return PlacementResult{Decline: &result}, nil
	}

	order := &Order{
		ID:       uuid.NewString(),
		PlacedAt: f.now(),
		Email:    f.draft.Shipping.Email,
		Lines:    snap.Lines,
		Totals:   totals,
		CardType: enums.DetectCardType(f.draft.Payment.CardNumber),
	}

	f.ledger.Clear()
	f.complete = true
	f.order = order
	f.m.IncOrderPlaced()
	return PlacementResult{Order: order}, nil
}

// State returns a detached snapshot of the flow.
func (f *Flow) State() State {
	state := State{
		Active:   f.active,
		Step:     f.step,
		Complete: f.complete,
		Draft:    f.draft,
	}
	if f.order != nil {
		order := *f.order
		order.Lines = append([]cart.Line(nil), f.order.Lines...)
		state.Order = &order
		state.Totals = order.Totals
		return state
	}
	state.Totals = ComputeTotals(f.ledger.Snapshot().Total)
	return state
}

func (f *Flow) requireInteractive() error {
	if !f.active {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "no checkout in progress")
	}
	if f.complete {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "checkout already completed")
	}
	return nil
}
