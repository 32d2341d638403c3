package cart

import (
	"testing"

	"github.com/danielavega/shopfront-backend/internal/catalog"
	"github.com/shopspring/decimal"
)

func testProduct(id, price string) catalog.Product {
	return catalog.Product{
		ID:    id,
		Name:  "Product " + id,
		Price: decimal.RequireFromString(price),
	}
}

func TestAddItemTwiceMergesIntoOneLine(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	a := testProduct("a", "100")

	ledger.AddItem(a)
	ledger.AddItem(a)

	snap := ledger.Snapshot()
	if len(snap.Lines) != 1 {
		t.Fatalf("expected one line, got %d", len(snap.Lines))
	}
	if snap.Lines[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", snap.Lines[0].Quantity)
	}
	if !snap.Total.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("expected total 200, got %s", snap.Total)
	}
	if snap.ItemCount != 2 {
		t.Fatalf("expected item count 2, got %d", snap.ItemCount)
	}
}

func TestUpdateQuantitySemantics(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	ledger.AddItem(testProduct("a", "10"))

	ledger.UpdateQuantity("a", 5)
	if snap := ledger.Snapshot(); snap.Lines[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", snap.Lines[0].Quantity)
	}

	// Zero removes the line.
	ledger.UpdateQuantity("a", 0)
	if !ledger.IsEmpty() {
		t.Fatalf("expected empty ledger after zero quantity")
	}

	// Negative also removes.
	ledger.AddItem(testProduct("a", "10"))
	ledger.UpdateQuantity("a", -5)
	if !ledger.IsEmpty() {
		t.Fatalf("expected empty ledger after negative quantity")
	}

	// Unknown IDs never create lines.
	ledger.UpdateQuantity("ghost", 3)
	if !ledger.IsEmpty() {
		t.Fatalf("update of unknown id must be a no-op")
	}
}

func TestRemoveItemIsTotalOperation(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	ledger.AddItem(testProduct("a", "10"))
	ledger.AddItem(testProduct("b", "20"))

	ledger.RemoveItem("a")
	snap := ledger.Snapshot()
	if len(snap.Lines) != 1 || snap.Lines[0].Product.ID != "b" {
		t.Fatalf("expected only b to remain, got %+v", snap.Lines)
	}

	// Removing a missing line is silently ignored.
	ledger.RemoveItem("a")
	if got := len(ledger.Snapshot().Lines); got != 1 {
		t.Fatalf("expected no-op removal, got %d lines", got)
	}
}

func TestClearEmptiesLedger(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	ledger.AddItem(testProduct("a", "10"))
	ledger.AddItem(testProduct("b", "20"))

	ledger.Clear()
	snap := ledger.Snapshot()
	if len(snap.Lines) != 0 || snap.ItemCount != 0 || !snap.Total.IsZero() {
		t.Fatalf("expected empty snapshot, got %+v", snap)
	}
}

func TestLedgerInvariantsHoldAcrossMixedOperations(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	a := testProduct("a", "100")
	b := testProduct("b", "50")

	ledger.AddItem(a)
	ledger.AddItem(b)
	ledger.AddItem(a)
	ledger.UpdateQuantity("b", 4)
	ledger.AddItem(b)
	ledger.UpdateQuantity("a", 1)
	ledger.RemoveItem("missing")

	snap := ledger.Snapshot()

	seen := map[string]bool{}
	for _, line := range snap.Lines {
		if seen[line.Product.ID] {
			t.Fatalf("duplicate line for product %s", line.Product.ID)
		}
		seen[line.Product.ID] = true
		if line.Quantity < 1 {
			t.Fatalf("line for %s has quantity %d", line.Product.ID, line.Quantity)
		}
	}

	// a=1 ($100), b=5 ($250).
	if snap.ItemCount != 6 {
		t.Fatalf("expected item count 6, got %d", snap.ItemCount)
	}
	if !snap.Total.Equal(decimal.NewFromInt(350)) {
		t.Fatalf("expected total 350, got %s", snap.Total)
	}
}

func TestSnapshotIsDetachedFromLedger(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	ledger.AddItem(testProduct("a", "10"))

	snap := ledger.Snapshot()
	snap.Lines[0].Quantity = 99

	if ledger.Snapshot().Lines[0].Quantity != 1 {
		t.Fatalf("snapshot mutation leaked into the ledger")
	}
}
