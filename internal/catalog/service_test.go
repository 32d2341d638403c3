package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewStoreValidatesFixture(t *testing.T) {
	t.Parallel()

	t.Run("duplicateID", func(t *testing.T) {
		_, err := NewStore([]Product{
			testProduct("a", "Alpha", "X", "BrandX", "10"),
			testProduct("a", "AlphaTwo", "X", "BrandX", "20"),
		}, nil, nil)
		if err == nil {
			t.Fatal("expected error for duplicate id")
		}
	})

	t.Run("originalPriceBelowPrice", func(t *testing.T) {
		p := testProduct("a", "Alpha", "X", "BrandX", "100")
		original := decimal.RequireFromString("50")
		p.OriginalPrice = &original
		if _, err := NewStore([]Product{p}, nil, nil); err == nil {
			t.Fatal("expected error for original price below price")
		}
	})

	t.Run("ratingOutOfRange", func(t *testing.T) {
		p := testProduct("a", "Alpha", "X", "BrandX", "100")
		p.Rating = decimal.RequireFromString("5.1")
		if _, err := NewStore([]Product{p}, nil, nil); err == nil {
			t.Fatal("expected error for rating above 5")
		}
	})
}

func TestDemoStoreLoads(t *testing.T) {
	t.Parallel()

	store, err := NewDemoStore()
	if err != nil {
		t.Fatalf("demo store failed to load: %v", err)
	}
	if store.Len() != 8 {
		t.Fatalf("expected 8 products, got %d", store.Len())
	}
	if got := store.ListCategories(); len(got) != 6 || got[0] != FacetAll {
		t.Fatalf("unexpected categories %v", got)
	}
	if got := store.ListBrands(); len(got) != 9 || got[0] != FacetAll {
		t.Fatalf("unexpected brands %v", got)
	}
	if _, ok := store.FindByID("3"); !ok {
		t.Fatalf("expected to find product 3")
	}
	if _, ok := store.FindByID("missing"); ok {
		t.Fatalf("unexpected hit for unknown id")
	}
}

func TestServiceBrowseMemoizesByFilterState(t *testing.T) {
	t.Parallel()

	store, err := NewDemoStore()
	if err != nil {
		t.Fatalf("demo store failed to load: %v", err)
	}
	svc, err := NewService(store)
	if err != nil {
		t.Fatalf("service failed to build: %v", err)
	}

	ctx := context.Background()
	filter := DefaultFilterState()

	first := svc.Browse(ctx, filter)
	second := svc.Browse(ctx, filter)
	if len(first) != len(second) {
		t.Fatalf("memoized browse changed length: %d vs %d", len(first), len(second))
	}

	// Callers get copies; clobbering one must not leak into the memo.
	first[0] = Product{ID: "poisoned"}
	third := svc.Browse(ctx, filter)
	if third[0].ID == "poisoned" {
		t.Fatalf("memo was mutated through a returned slice")
	}

	filter.Search = "camera"
	narrowed := svc.Browse(ctx, filter)
	if len(narrowed) >= len(second) {
		t.Fatalf("expected narrowed result, got %d of %d", len(narrowed), len(second))
	}
}

func TestNewServiceRequiresStore(t *testing.T) {
	t.Parallel()

	if _, err := NewService(nil); err == nil {
		t.Fatal("expected error for nil store")
	}
}
