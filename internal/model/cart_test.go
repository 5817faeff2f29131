package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func snapshot(id string, price string, prep bool) ProductSnapshot {
	return ProductSnapshot{ID: id, Name: id, Price: decimal.RequireFromString(price), NeedsPreparation: prep}
}

func TestCart_AddSimpleMergesSameProductAndObservation(t *testing.T) {
	cart := NewCart(CartTable)
	acai := snapshot("acai-300", "12.00", true)

	cart.AddSimple(acai, 1, "sem granola")
	cart.AddSimple(acai, 2, "sem granola")
	cart.AddSimple(acai, 1, "")

	if len(cart.Items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 3 {
		t.Errorf("expected merged quantity 3, got %d", cart.Items[0].Quantity)
	}
	if cart.Items[1].Observation != "" || cart.Items[1].Quantity != 1 {
		t.Errorf("unexpected second line %+v", cart.Items[1])
	}
}

func TestCart_AddCompositeNeverMerges(t *testing.T) {
	cart := NewCart(CartTable)
	burger := snapshot("lanche-1", "18.00", true)
	selected := []SelectedIngredient{{ProductID: "ing-carne", Quantity: 150, MeasureUnit: UnitGram, Included: true}}

	cart.AddComposite(burger, "lanche-1", selected, "", 1)
	cart.AddComposite(burger, "lanche-1", selected, "", 1)
	cart.AddSimple(burger, 1, "")

	if len(cart.Items) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(cart.Items))
	}
	selected[0].Included = false
	if !cart.Items[0].SelectedIngredients[0].Included {
		t.Error("cart line must not share the caller's ingredient slice")
	}
}

func TestCart_AddPortionMergesByPortion(t *testing.T) {
	cart := NewCart(CartCounter)
	portion := DefaultPortions[0]

	cart.AddPortion(portion, 1, "")
	cart.AddPortion(portion, 2, "")

	if len(cart.Items) != 1 || cart.Items[0].Quantity != 3 {
		t.Fatalf("expected a single line of 3, got %+v", cart.Items)
	}
	if len(cart.Items[0].SelectedIngredients) != len(portion.Ingredients) {
		t.Errorf("portion recipe not frozen on the line")
	}
}

func TestCart_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name      string
		delta     int
		wantLines int
		wantQty   int
	}{
		{"increment", 2, 1, 4},
		{"decrement", -1, 1, 1},
		{"to zero removes", -2, 0, 0},
		{"below zero removes", -5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := NewCart(CartTable)
			cart.AddSimple(snapshot("dog-simples", "8.00", true), 2, "")

			if !cart.UpdateQuantity(0, tt.delta) {
				t.Fatal("expected update to succeed")
			}
			if len(cart.Items) != tt.wantLines {
				t.Fatalf("expected %d lines, got %d", tt.wantLines, len(cart.Items))
			}
			if tt.wantLines == 1 && cart.Items[0].Quantity != tt.wantQty {
				t.Errorf("expected quantity %d, got %d", tt.wantQty, cart.Items[0].Quantity)
			}
		})
	}
}

func TestCart_UpdateQuantityOutOfRange(t *testing.T) {
	cart := NewCart(CartTable)
	if cart.UpdateQuantity(0, 1) {
		t.Error("expected false for empty cart")
	}
	if cart.Remove(3) {
		t.Error("expected false for missing line")
	}
}

func TestCart_Totals(t *testing.T) {
	cart := NewCart(CartCounter)
	cart.AddSimple(snapshot("acai-300", "12.00", true), 2, "")
	cart.AddSimple(snapshot("refri-lata", "6.50", false), 3, "")

	if cart.TotalItems() != 5 {
		t.Errorf("expected 5 items, got %d", cart.TotalItems())
	}
	if !cart.TotalPrice().Equal(decimal.RequireFromString("43.50")) {
		t.Errorf("expected 43.50, got %s", cart.TotalPrice())
	}
	if !cart.NeedsPreparation() {
		t.Error("expected cart to need preparation")
	}

	cart.ComandaNumber = 4
	cart.Clear()
	if len(cart.Items) != 0 || cart.ComandaNumber != 0 || !cart.TotalPrice().IsZero() {
		t.Errorf("clear left state behind: %+v", cart)
	}
}

func TestCompositeProduct_Margin(t *testing.T) {
	burger := DefaultComposites[0]
	margin := burger.Margin()
	if margin == nil || !margin.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("expected margin 10, got %v", margin)
	}

	burger.CostPrice = nil
	if burger.Margin() != nil {
		t.Error("expected nil margin without cost")
	}
}
