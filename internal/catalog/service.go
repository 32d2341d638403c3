package catalog

import (
	"context"
	"fmt"
	"sync"
)

// Service exposes the catalog browsing surface: facet vocabularies plus the
// filtered, sorted product listing.
type Service interface {
	Browse(ctx context.Context, filter FilterState) []Product
	Categories() []string
	Brands() []string
	Get(id string) (Product, bool)
}

type service struct {
	store *Store

	// Last-result memo keyed on the full filter state. Any change to any input
	// recomputes the whole listing from the full catalog.
	mu         sync.Mutex
	memoFilter FilterState
	memoResult []Product
	memoValid  bool
}

// NewService builds a browsing service over the provided catalog.
func NewService(store *Store) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("catalog store required")
	}
	return &service{store: store}, nil
}

func (s *service) Browse(_ context.Context, filter FilterState) []Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.memoValid || !filter.Equal(s.memoFilter) {
		s.memoFilter = filter
		s.memoResult = Query(s.store.ListProducts(), filter)
		s.memoValid = true
	}

	out := make([]Product, len(s.memoResult))
	copy(out, s.memoResult)
	return out
}

func (s *service) Categories() []string {
	return s.store.ListCategories()
}

func (s *service) Brands() []string {
	return s.store.ListBrands()
}

func (s *service) Get(id string) (Product, bool) {
	return s.store.FindByID(id)
}
