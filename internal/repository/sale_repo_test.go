package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"comanda-pos/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.Sale{}, &model.SaleItem{}, &model.StockMovement{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testSale(saleType model.SaleType, method model.PaymentMethod, items ...model.SaleItem) *model.Sale {
	sale := &model.Sale{Type: saleType, PaymentMethod: method, Total: decimal.Zero}
	for _, item := range items {
		sale.Total = sale.Total.Add(item.LineTotal)
	}
	sale.Items = items
	return sale
}

func saleItem(id, name string, qty int, unit string) model.SaleItem {
	price := decimal.RequireFromString(unit)
	return model.SaleItem{
		ProductID: id,
		Name:      name,
		Quantity:  qty,
		UnitPrice: price,
		LineTotal: price.Mul(decimal.NewFromInt(int64(qty))),
	}
}

func window() (time.Time, time.Time) {
	now := time.Now().UTC()
	return now.Add(-24 * time.Hour), now.Add(24 * time.Hour)
}

func TestSaleRepo_CreateWithMovements(t *testing.T) {
	db := openTestDB(t)
	repo := NewSaleRepo(db)
	ctx := context.Background()

	sale := testSale(model.SalePDV, model.PaymentPix, saleItem("refri-lata", "Refrigerante", 2, "6.00"))
	movements := []model.StockMovement{{ProductID: "refri-lata", ProductName: "Refrigerante", Type: model.MovementSale, Quantity: -2, PreviousQty: 50, NewQty: 48}}
	if err := repo.CreateWithMovements(ctx, sale, movements); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, err := repo.FindByID(ctx, sale.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stored.Items) != 1 || !stored.Total.Equal(decimal.RequireFromString("12")) {
		t.Errorf("unexpected sale %+v", stored)
	}

	recent, err := NewMovementRepo(db).FindRecent(ctx, "refri-lata", 10)
	if err != nil || len(recent) != 1 || recent[0].NewQty != 48 {
		t.Errorf("expected the movement to be stored, got %+v (%v)", recent, err)
	}
}

func TestSaleRepo_CreateRollsBackOnMovementFailure(t *testing.T) {
	db := openTestDB(t)
	repo := NewSaleRepo(db)
	ctx := context.Background()

	stored := []model.StockMovement{{ProductID: "agua-500", Type: model.MovementSale, Quantity: -1}}
	first := testSale(model.SalePDV, model.PaymentCash, saleItem("agua-500", "Água", 1, "4.00"))
	if err := repo.CreateWithMovements(ctx, first, stored); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// a movement reusing a stored id fails after the sale row was written
	dup := []model.StockMovement{{ProductID: "agua-500", Type: model.MovementSale, Quantity: -1}}
	dup[0].ID = stored[0].ID
	second := testSale(model.SalePDV, model.PaymentCash, saleItem("agua-500", "Água", 1, "4.00"))
	if err := repo.CreateWithMovements(ctx, second, dup); err == nil {
		t.Fatal("expected duplicate key error")
	}

	sales, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sales) != 1 {
		t.Errorf("the failed sale must be rolled back, got %d sales", len(sales))
	}
}

func TestSaleRepo_FindByPeriod(t *testing.T) {
	db := openTestDB(t)
	repo := NewSaleRepo(db)
	ctx := context.Background()

	table := 4
	comanda := testSale(model.SaleComanda, model.PaymentDebit, saleItem("lanche-1", "X-Burguer", 2, "18.00"))
	comanda.ComandaNumber = &table
	repo.CreateWithMovements(ctx, comanda, nil)
	repo.CreateWithMovements(ctx, testSale(model.SalePDV, model.PaymentPix, saleItem("refri-lata", "Refrigerante", 1, "6.00")), nil)

	start, end := window()
	tests := []struct {
		saleType model.SaleType
		want     int
	}{
		{"", 2},
		{model.SaleComanda, 1},
		{model.SalePDV, 1},
	}
	for _, tt := range tests {
		sales, err := repo.FindByPeriod(ctx, start, end, tt.saleType)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sales) != tt.want {
			t.Errorf("type %q: expected %d sales, got %d", tt.saleType, tt.want, len(sales))
		}
	}

	past := start.Add(-48 * time.Hour)
	if sales, _ := repo.FindByPeriod(ctx, past, past.Add(time.Hour), ""); len(sales) != 0 {
		t.Errorf("expected no sales outside the window, got %d", len(sales))
	}
}

func TestSaleRepo_SummaryAndRanking(t *testing.T) {
	db := openTestDB(t)
	repo := NewSaleRepo(db)
	ctx := context.Background()

	repo.CreateWithMovements(ctx, testSale(model.SalePDV, model.PaymentPix,
		saleItem("refri-lata", "Refrigerante", 3, "6.00"),
		saleItem("lanche-1", "X-Burguer", 1, "18.00"),
	), nil)
	repo.CreateWithMovements(ctx, testSale(model.SalePDV, model.PaymentCash,
		saleItem("refri-lata", "Refrigerante", 2, "6.00"),
	), nil)

	start, end := window()
	summary, err := repo.GetSummary(ctx, start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Count != 2 || !summary.Total.Equal(decimal.RequireFromString("48")) {
		t.Errorf("unexpected summary %+v", summary)
	}
	if !summary.ByPayment[model.PaymentCash].Equal(decimal.RequireFromString("12")) {
		t.Errorf("expected cash 12, got %s", summary.ByPayment[model.PaymentCash])
	}

	ranking, err := repo.GetProductRanking(ctx, start, end, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranking) != 2 || ranking[0].ProductID != "refri-lata" || ranking[0].Quantity != 5 {
		t.Errorf("unexpected ranking %+v", ranking)
	}
	if !ranking[0].Revenue.Equal(decimal.RequireFromString("30")) {
		t.Errorf("expected revenue 30, got %s", ranking[0].Revenue)
	}
}

func TestSaleRepo_FindByIDMissing(t *testing.T) {
	repo := NewSaleRepo(openTestDB(t))
	_, err := repo.FindByID(context.Background(), testSale(model.SalePDV, model.PaymentPix).ID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}
