package service

import (
	"context"
	"time"

	"comanda-pos/internal/model"
	"comanda-pos/internal/repository"

	"github.com/shopspring/decimal"
)

// DashboardStats is the admin overview for the current day
type DashboardStats struct {
	Today          *repository.SalesSummary  `json:"today"`
	TopProducts    []repository.ProductSales `json:"top_products"`
	LowStock       []model.StockItem         `json:"low_stock"`
	OpenTables     int                       `json:"open_tables"`
	PreparingCount int                       `json:"preparing_count"`
	ReadyCount     int                       `json:"ready_count"`
}

type CompositeMargin struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Type      string           `json:"type"`
	Price     decimal.Decimal  `json:"price"`
	CostPrice *decimal.Decimal `json:"cost_price,omitempty"`
	Margin    *decimal.Decimal `json:"margin,omitempty"`
}

type ReportService interface {
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
	GetSales(ctx context.Context, start, end time.Time, saleType model.SaleType) ([]model.Sale, error)
	GetSummary(ctx context.Context, start, end time.Time) (*repository.SalesSummary, error)
	GetProductRanking(ctx context.Context, days, limit int) ([]repository.ProductSales, error)
	GetCompositeMargins() []CompositeMargin
}

type reportService struct {
	sales   repository.SaleRepository
	stock   *StockLedger
	orders  *OrderLedger
	catalog *Catalog
	now     func() time.Time
}

func NewReportService(sales repository.SaleRepository, stock *StockLedger, orders *OrderLedger, catalog *Catalog) ReportService {
	return &reportService{
		sales:   sales,
		stock:   stock,
		orders:  orders,
		catalog: catalog,
		now:     time.Now,
	}
}

func (s *reportService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	summary, err := s.sales.GetSummary(ctx, startOfDay, now)
	if err != nil {
		return nil, err
	}
	top, err := s.sales.GetProductRanking(ctx, startOfDay, now, 5)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		Today:          summary,
		TopProducts:    top,
		LowStock:       s.stock.LowStockItems(),
		OpenTables:     len(s.orders.TableTabs()),
		PreparingCount: s.orders.PreparingCount(),
		ReadyCount:     len(s.orders.Ready()),
	}, nil
}

func (s *reportService) GetSales(ctx context.Context, start, end time.Time, saleType model.SaleType) ([]model.Sale, error) {
	return s.sales.FindByPeriod(ctx, start, end, saleType)
}

func (s *reportService) GetSummary(ctx context.Context, start, end time.Time) (*repository.SalesSummary, error) {
	return s.sales.GetSummary(ctx, start, end)
}

func (s *reportService) GetProductRanking(ctx context.Context, days, limit int) ([]repository.ProductSales, error) {
	end := s.now()
	start := end.AddDate(0, 0, -days)
	return s.sales.GetProductRanking(ctx, start, end, limit)
}

func (s *reportService) GetCompositeMargins() []CompositeMargin {
	composites := s.catalog.Composites()
	out := make([]CompositeMargin, 0, len(composites))
	for _, comp := range composites {
		out = append(out, CompositeMargin{
			ID:        comp.ID,
			Name:      comp.Name,
			Type:      string(comp.Type),
			Price:     comp.Price,
			CostPrice: comp.CostPrice,
			Margin:    comp.Margin(),
		})
	}
	return out
}
