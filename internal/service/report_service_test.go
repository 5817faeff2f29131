package service

import (
	"context"
	"testing"
	"time"

	"comanda-pos/internal/model"
)

func TestReportService_DashboardStats(t *testing.T) {
	f := newFixture()
	reports := NewReportService(f.sales, f.stock, f.orders, f.catalog)
	ctx := context.Background()

	cart := model.NewCart(model.CartCounter)
	cart.AddSimple(f.product("refri-lata").Snapshot(), 2, "")
	if _, err := f.checkout.Settle(ctx, cart, &SettleRequest{PaymentMethod: model.PaymentPix}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	table := model.NewCart(model.CartTable)
	table.AddSimple(f.product("dog-simples").Snapshot(), 1, "")
	if _, err := f.checkout.SubmitTable(ctx, table, 9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stats, err := reports.GetDashboardStats(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Today.Count != 1 || !stats.Today.Total.Equal(money("12.00")) {
		t.Errorf("unexpected summary %+v", stats.Today)
	}
	if !stats.Today.ByPayment[model.PaymentPix].Equal(money("12.00")) {
		t.Errorf("expected pix total 12.00, got %s", stats.Today.ByPayment[model.PaymentPix])
	}
	if stats.OpenTables != 1 || stats.PreparingCount != 1 || stats.ReadyCount != 0 {
		t.Errorf("unexpected order counters %+v", stats)
	}
}

func TestReportService_GetSalesFiltersByType(t *testing.T) {
	f := newFixture()
	reports := NewReportService(f.sales, f.stock, f.orders, f.catalog)
	ctx := context.Background()

	cart := model.NewCart(model.CartCounter)
	cart.AddSimple(f.product("agua-500").Snapshot(), 1, "")
	f.checkout.Settle(ctx, cart, &SettleRequest{PaymentMethod: model.PaymentCash})

	end := time.Now().Add(time.Hour)
	start := end.Add(-48 * time.Hour)
	if sales, _ := reports.GetSales(ctx, start, end, model.SaleComanda); len(sales) != 0 {
		t.Errorf("expected no comanda sales, got %d", len(sales))
	}
	if sales, _ := reports.GetSales(ctx, start, end, ""); len(sales) != 1 {
		t.Errorf("expected 1 sale, got %d", len(sales))
	}
}

func TestReportService_CompositeMargins(t *testing.T) {
	f := newFixture()
	reports := NewReportService(f.sales, f.stock, f.orders, f.catalog)

	margins := reports.GetCompositeMargins()
	if len(margins) != len(model.DefaultComposites) {
		t.Fatalf("expected %d margins, got %d", len(model.DefaultComposites), len(margins))
	}
	for _, m := range margins {
		if m.ID == "lanche-1" && !m.Margin.Equal(money("10.00")) {
			t.Errorf("expected X-Burguer margin 10.00, got %s", m.Margin)
		}
	}
}
