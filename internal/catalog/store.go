package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Store holds the fixed set of purchasable product records plus the facet
// vocabularies used to populate filter controls. It is read-only after
// construction and safe for concurrent use.
type Store struct {
	products   []Product
	byID       map[string]Product
	categories []string
	brands     []string
}

// NewStore validates the fixture invariants and builds the catalog.
func NewStore(products []Product, categories, brands []string) (*Store, error) {
	byID := make(map[string]Product, len(products))
	five := decimal.NewFromInt(5)
	for _, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("product %q has no id", p.Name)
		}
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("product %q has negative price", p.ID)
		}
		if p.OriginalPrice != nil && p.OriginalPrice.LessThan(p.Price) {
			return nil, fmt.Errorf("product %q original price below price", p.ID)
		}
		if p.Rating.IsNegative() || p.Rating.GreaterThan(five) {
			return nil, fmt.Errorf("product %q rating out of range", p.ID)
		}
		if p.ReviewCount < 0 {
			return nil, fmt.Errorf("product %q has negative review count", p.ID)
		}
		byID[p.ID] = p
	}
	return &Store{
		products:   products,
		byID:       byID,
		categories: categories,
		brands:     brands,
	}, nil
}

// NewDemoStore loads the built-in demo fixture.
func NewDemoStore() (*Store, error) {
	return NewStore(demoProducts(), demoCategories(), demoBrands())
}

// ListProducts returns a copy of the full catalog.
func (s *Store) ListProducts() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// ListCategories returns the category vocabulary including the "All" sentinel.
func (s *Store) ListCategories() []string {
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}

// ListBrands returns the brand vocabulary including the "All" sentinel.
func (s *Store) ListBrands() []string {
	out := make([]string, len(s.brands))
	copy(out, s.brands)
	return out
}

// FindByID looks up a product by identity.
func (s *Store) FindByID(id string) (Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// Len reports the catalog size.
func (s *Store) Len() int {
	return len(s.products)
}
