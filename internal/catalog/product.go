package catalog

import (
	"github.com/shopspring/decimal"
)

// Product is an immutable catalog record. Instances are loaded once at process
// start and never mutated afterwards; everything downstream works on copies.
type Product struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	Image         string           `json:"image"`
	Category      string           `json:"category"`
	Brand         string           `json:"brand"`
	Rating        decimal.Decimal  `json:"rating"`
	ReviewCount   int              `json:"review_count"`
	InStock       bool             `json:"in_stock"`
	Features      []string         `json:"features"`
	Tags          []string         `json:"tags"`
}

// Discounted reports whether the product carries a markdown from an original price.
func (p Product) Discounted() bool {
	return p.OriginalPrice != nil
}
