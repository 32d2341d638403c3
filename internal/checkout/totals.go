package checkout

import "github.com/shopspring/decimal"

// Flat 8% sales tax on every order; shipping is always free in the demo.
var taxRate = decimal.New(8, -2)

// Totals is the order summary derived from a cart subtotal. Nothing here is
// stored; it is recomputed from the cart on every read.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeTotals derives the summary for a subtotal. Tax and total are rounded
// to cents.
func ComputeTotals(subtotal decimal.Decimal) Totals {
	tax := subtotal.Mul(taxRate).Round(2)
	return Totals{
		Subtotal: subtotal,
		Shipping: decimal.Zero,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
