package service

import (
	"context"
	"errors"
	"testing"

	"comanda-pos/internal/model"
)

func TestStockService_UpdateFractionalCountsUnits(t *testing.T) {
	f := newFixture()
	svc := NewStockService(f.stock, f.catalog, f.movements, f.notifier)

	view, err := svc.Update(context.Background(), "ing-carne", &StockEntryRequest{Quantity: "2,5", MinQuantity: "750"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Quantity != 3750 || view.Units != 2.5 || view.MinQuantity != 750 {
		t.Errorf("unexpected view %+v", view)
	}
	if view.MeasureUnit != model.UnitGram || view.UnitVolume != 1500 {
		t.Errorf("fractional view should carry unit info, got %+v", view)
	}

	if len(f.movements.movements) != 1 {
		t.Fatalf("expected 1 movement, got %d", len(f.movements.movements))
	}
	mv := f.movements.movements[0]
	if mv.Type != model.MovementAdjustment || mv.PreviousQty != 6000 || mv.NewQty != 3750 || mv.Quantity != -2250 {
		t.Errorf("unexpected movement %+v", mv)
	}
	if f.notifier.stock != 1 {
		t.Errorf("expected a stock notification, got %d", f.notifier.stock)
	}
}

func TestStockService_UpdateWholeAndGarbage(t *testing.T) {
	f := newFixture()
	svc := NewStockService(f.stock, f.catalog, f.movements, nil)

	view, err := svc.Update(context.Background(), "refri-lata", &StockEntryRequest{Quantity: "abc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Quantity != 0 || !view.Low || view.MinQuantity != 10 {
		t.Errorf("non-numeric input counts as zero, got %+v", view)
	}

	low := svc.LowStock()
	if len(low) != 1 || low[0].ProductID != "refri-lata" {
		t.Errorf("expected only refri to be low, got %+v", low)
	}
}

func TestStockService_UpdateErrors(t *testing.T) {
	f := newFixture()
	svc := NewStockService(f.stock, f.catalog, f.movements, nil)

	if _, err := svc.Update(context.Background(), "ghost", &StockEntryRequest{Quantity: "1"}); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}

	f.movements.fail = errStorageDown
	if _, err := svc.Update(context.Background(), "refri-lata", &StockEntryRequest{Quantity: "3"}); !errors.Is(err, errStorageDown) {
		t.Errorf("expected storage error, got %v", err)
	}
	if got := f.stock.GetAvailable("refri-lata"); got != model.DefaultWholeStock {
		t.Errorf("failed commit must leave stock alone, got %v", got)
	}
}

func TestStockService_List(t *testing.T) {
	f := newFixture()
	svc := NewStockService(f.stock, f.catalog, f.movements, nil)

	views := svc.List()
	if len(views) != len(f.catalog.Products()) {
		t.Errorf("expected one entry per product, got %d", len(views))
	}
	for i := 1; i < len(views); i++ {
		if views[i-1].ProductName > views[i].ProductName {
			t.Fatalf("list not sorted by name at %d", i)
		}
	}
}
