package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"comanda-pos/internal/model"
	"comanda-pos/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var errStorageDown = errors.New("storage down")

type fakeSaleRepo struct {
	mu        sync.Mutex
	sales     []model.Sale
	movements []model.StockMovement
	fail      error
}

func (r *fakeSaleRepo) CreateWithMovements(ctx context.Context, sale *model.Sale, movements []model.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return r.fail
	}
	r.sales = append(r.sales, *sale)
	r.movements = append(r.movements, movements...)
	return nil
}

func (r *fakeSaleRepo) FindAll(ctx context.Context) ([]model.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Sale(nil), r.sales...), nil
}

func (r *fakeSaleRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sales {
		if s.ID == id {
			sale := s
			return &sale, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeSaleRepo) FindByPeriod(ctx context.Context, start, end time.Time, saleType model.SaleType) ([]model.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Sale
	for _, s := range r.sales {
		if saleType == "" || s.Type == saleType {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) GetSummary(ctx context.Context, start, end time.Time) (*repository.SalesSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	summary := &repository.SalesSummary{
		Total:     decimal.Zero,
		ByType:    map[model.SaleType]decimal.Decimal{},
		ByPayment: map[model.PaymentMethod]decimal.Decimal{},
	}
	for _, s := range r.sales {
		summary.Count++
		summary.Total = summary.Total.Add(s.Total)
		summary.ByType[s.Type] = summary.ByType[s.Type].Add(s.Total)
		summary.ByPayment[s.PaymentMethod] = summary.ByPayment[s.PaymentMethod].Add(s.Total)
	}
	return summary, nil
}

func (r *fakeSaleRepo) GetProductRanking(ctx context.Context, start, end time.Time, limit int) ([]repository.ProductSales, error) {
	return nil, nil
}

func (r *fakeSaleRepo) saleCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sales)
}

type fakeMovementRepo struct {
	mu        sync.Mutex
	movements []model.StockMovement
	fail      error
}

func (r *fakeMovementRepo) Record(ctx context.Context, movements []model.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return r.fail
	}
	r.movements = append(r.movements, movements...)
	return nil
}

func (r *fakeMovementRepo) FindRecent(ctx context.Context, productID string, limit int) ([]model.StockMovement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.StockMovement
	for _, m := range r.movements {
		if productID == "" || m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []string
	counts []int
	stock  int
}

func (n *recordingNotifier) OrderPlaced(order model.Order, preparingCount int) {
	n.record("placed", preparingCount)
}

func (n *recordingNotifier) OrderReady(order model.Order, preparingCount int) {
	n.record("ready", preparingCount)
}

func (n *recordingNotifier) OrderCleared(orderID string, preparingCount int) {
	n.record("cleared", preparingCount)
}

func (n *recordingNotifier) StockChanged(movements []model.StockMovement) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stock++
}

func (n *recordingNotifier) record(event string, count int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
	n.counts = append(n.counts, count)
}

func money(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

// fixture wires the core components around a small catalog
type fixture struct {
	stock     *StockLedger
	orders    *OrderLedger
	catalog   *Catalog
	sales     *fakeSaleRepo
	movements *fakeMovementRepo
	checkout  CheckoutService
	notifier  *recordingNotifier
}

func newFixture() *fixture {
	f := &fixture{
		stock:     NewStockLedger(),
		sales:     &fakeSaleRepo{},
		movements: &fakeMovementRepo{},
		notifier:  &recordingNotifier{},
	}
	f.orders = NewOrderLedger(f.notifier)
	f.catalog = NewCatalog(f.stock, 10)
	f.catalog.SeedDefaults()
	f.checkout = NewCheckoutService(f.stock, f.orders, f.sales, f.movements, f.notifier)
	return f
}

func (f *fixture) composite(id string) model.CompositeProduct {
	c, err := f.catalog.Composite(id)
	if err != nil {
		panic(err)
	}
	return c
}

func (f *fixture) product(id string) model.Product {
	p, err := f.catalog.Product(id)
	if err != nil {
		panic(err)
	}
	return p
}

func (f *fixture) portion(id string) model.Portion {
	p, err := f.catalog.Portion(id)
	if err != nil {
		panic(err)
	}
	return p
}
