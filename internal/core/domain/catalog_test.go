package domain

import "testing"

func TestFilterByCategory(t *testing.T) {
	products := []Product{
		{ID: 1, CategoryID: 3},
		{ID: 2, CategoryID: 4},
		{ID: 3, CategoryID: 3},
	}

	if got := FilterByCategory(products, nil); len(got) != 3 {
		t.Fatalf("nil selection must pass everything through, got %d", len(got))
	}

	sel := int64(3)
	got := FilterByCategory(products, &sel)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("order-preserving strict match expected, got %+v", got)
	}

	sel = 99
	if got := FilterByCategory(products, &sel); len(got) != 0 {
		t.Fatalf("unknown category must match nothing, got %+v", got)
	}
}

func TestEstimatedSubtotal(t *testing.T) {
	items := []CartItem{
		{ID: 1, ProductID: 10, Quantity: 2},
		{ID: 2, ProductID: 11, Quantity: 1},
	}
	if got := EstimatedSubtotal(items); got != 30.0 {
		t.Fatalf("expected 30.00 at the placeholder price, got %.2f", got)
	}
	if got := EstimatedSubtotal(nil); got != 0 {
		t.Fatalf("empty cart must estimate zero, got %.2f", got)
	}
}
