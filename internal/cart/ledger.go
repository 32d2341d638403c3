package cart

import (
	"github.com/danielavega/shopfront-backend/internal/catalog"
	"github.com/shopspring/decimal"
)

// Line is one row in the cart: a product reference plus a quantity that is
// always >= 1. A decrement to zero or below removes the line entirely.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Subtotal is the line's price times quantity.
func (l Line) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Snapshot is the read surface of the ledger. ItemCount and Total are derived
// from the line list on every read, never mutated independently.
type Snapshot struct {
	Lines     []Line          `json:"lines"`
	ItemCount int             `json:"item_count"`
	Total     decimal.Decimal `json:"total"`
}

// Ledger is the in-memory cart: an ordered sequence of lines, unique by product
// identity. Operations are total and never fail; the owning session serializes
// access, so the ledger itself carries no lock.
type Ledger struct {
	lines []Line
}

// NewLedger returns an empty cart.
func NewLedger() *Ledger {
	return &Ledger{}
}

// AddItem increments the quantity of an existing line for this product, or
// appends a new line with quantity 1. Stock checks belong to the calling
// surface, not the ledger.
func (l *Ledger) AddItem(product catalog.Product) {
	for i := range l.lines {
		if l.lines[i].Product.ID == product.ID {
			l.lines[i].Quantity++
			return
		}
	}
	l.lines = append(l.lines, Line{Product: product, Quantity: 1})
}

// UpdateQuantity sets the quantity of the line for productID. A quantity <= 0
// removes the line. Unknown product IDs are a no-op either way; this never
// creates a line.
func (l *Ledger) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		l.RemoveItem(productID)
		return
	}
	for i := range l.lines {
		if l.lines[i].Product.ID == productID {
			l.lines[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem deletes the line for productID if present.
func (l *Ledger) RemoveItem(productID string) {
	for i := range l.lines {
		if l.lines[i].Product.ID == productID {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the ledger.
func (l *Ledger) Clear() {
	l.lines = nil
}

// Snapshot derives the current read view from the line set.
func (l *Ledger) Snapshot() Snapshot {
	lines := make([]Line, len(l.lines))
	copy(lines, l.lines)

	itemCount := 0
	total := decimal.Zero
	for _, line := range lines {
		itemCount += line.Quantity
		total = total.Add(line.Subtotal())
	}

	return Snapshot{
		Lines:     lines,
		ItemCount: itemCount,
		Total:     total,
	}
}

// IsEmpty reports whether the cart holds no lines.
func (l *Ledger) IsEmpty() bool {
	return len(l.lines) == 0
}
