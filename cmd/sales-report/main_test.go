package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"comanda-pos/internal/model"
	"comanda-pos/internal/repository"

	"github.com/shopspring/decimal"
)

func TestPeriod(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		from, to  string
		wantStart string
		wantEnd   string
		wantErr   bool
	}{
		{name: "today", wantStart: "2026-03-14", wantEnd: "2026-03-14"},
		{name: "single day", from: "2026-03-01", wantStart: "2026-03-01", wantEnd: "2026-03-01"},
		{name: "range", from: "2026-03-01", to: "2026-03-07", wantStart: "2026-03-01", wantEnd: "2026-03-07"},
		{name: "bad date", from: "01/03/2026", wantErr: true},
		{name: "reversed", from: "2026-03-07", to: "2026-03-01", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := period(tt.from, tt.to, now)
			if tt.wantErr {
				if err == nil {
					t.Error("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if start.Format("2006-01-02") != tt.wantStart || end.Format("2006-01-02") != tt.wantEnd {
				t.Errorf("got %s..%s", start, end)
			}
			if end.Hour() != 23 || start.Hour() != 0 {
				t.Errorf("range should cover whole days, got %s..%s", start, end)
			}
		})
	}
}

func TestPrintReport(t *testing.T) {
	table := 4
	sales := []model.Sale{
		{Type: model.SaleComanda, ComandaNumber: &table, PaymentMethod: model.PaymentPix, Total: decimal.RequireFromString("54")},
	}
	summary := &repository.SalesSummary{
		Count:     1,
		Total:     decimal.RequireFromString("54"),
		ByType:    map[model.SaleType]decimal.Decimal{model.SaleComanda: decimal.RequireFromString("54")},
		ByPayment: map[model.PaymentMethod]decimal.Decimal{model.PaymentPix: decimal.RequireFromString("54")},
	}
	ranking := []repository.ProductSales{{Name: "X-Burguer", Quantity: 2, Revenue: decimal.RequireFromString("36")}}

	var out bytes.Buffer
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	printReport(&out, day, day.Add(24*time.Hour-time.Nanosecond), sales, summary, ranking)

	for _, want := range []string{"1 sale(s), total R$ 54.00", "comanda", "pix", "X-Burguer", "R$ 36.00"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("report misses %q:\n%s", want, out.String())
		}
	}
}
