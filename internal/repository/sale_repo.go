package repository

import (
	"context"
	"time"

	"comanda-pos/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SaleRepository interface {
	CreateWithMovements(ctx context.Context, sale *model.Sale, movements []model.StockMovement) error
	FindAll(ctx context.Context) ([]model.Sale, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error)
	FindByPeriod(ctx context.Context, start, end time.Time, saleType model.SaleType) ([]model.Sale, error)
	GetSummary(ctx context.Context, start, end time.Time) (*SalesSummary, error)
	GetProductRanking(ctx context.Context, start, end time.Time, limit int) ([]ProductSales, error)
}

// SalesSummary aggregates settled sales over a period
type SalesSummary struct {
	Count     int64                                   `json:"count"`
	Total     decimal.Decimal                         `json:"total"`
	ByType    map[model.SaleType]decimal.Decimal      `json:"by_type"`
	ByPayment map[model.PaymentMethod]decimal.Decimal `json:"by_payment"`
}

// ProductSales is one row of the best sellers ranking
type ProductSales struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	Revenue   decimal.Decimal `json:"revenue"`
}

type summaryRow struct {
	Type          model.SaleType
	PaymentMethod model.PaymentMethod
	Count         int64
	Total         decimal.Decimal
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

// CreateWithMovements stores the sale, its items and the stock movements atomically
func (r *saleRepo) CreateWithMovements(ctx context.Context, sale *model.Sale, movements []model.StockMovement) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sale).Error; err != nil {
			return err
		}
		if len(movements) == 0 {
			return nil
		}
		return tx.Create(&movements).Error
	})
}

func (r *saleRepo) FindAll(ctx context.Context) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).Preload("Items").Order("created_at DESC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error) {
	var sale model.Sale
	err := r.db.WithContext(ctx).Preload("Items").First(&sale, "id = ?", id).Error
	return &sale, err
}

// FindByPeriod filters by type unless saleType is empty
func (r *saleRepo) FindByPeriod(ctx context.Context, start, end time.Time, saleType model.SaleType) ([]model.Sale, error) {
	var sales []model.Sale
	query := r.db.WithContext(ctx).Preload("Items").Where("created_at BETWEEN ? AND ?", start, end)
	if saleType != "" {
		query = query.Where("type = ?", saleType)
	}
	err := query.Order("created_at DESC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) GetSummary(ctx context.Context, start, end time.Time) (*SalesSummary, error) {
	var rows []summaryRow

	err := r.db.WithContext(ctx).Model(&model.Sale{}).
		Select("type, payment_method, COUNT(*) as count, COALESCE(SUM(total), 0) as total").
		Where("created_at BETWEEN ? AND ?", start, end).
		Group("type, payment_method").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summary := &SalesSummary{
		Total:     decimal.Zero,
		ByType:    make(map[model.SaleType]decimal.Decimal),
		ByPayment: make(map[model.PaymentMethod]decimal.Decimal),
	}
	for _, row := range rows {
		summary.Count += row.Count
		summary.Total = summary.Total.Add(row.Total)
		summary.ByType[row.Type] = summary.ByType[row.Type].Add(row.Total)
		summary.ByPayment[row.PaymentMethod] = summary.ByPayment[row.PaymentMethod].Add(row.Total)
	}
	return summary, nil
}

func (r *saleRepo) GetProductRanking(ctx context.Context, start, end time.Time, limit int) ([]ProductSales, error) {
	var ranking []ProductSales
	query := r.db.WithContext(ctx).Table("sale_items").
		Select("sale_items.product_id, sale_items.name, SUM(sale_items.quantity) as quantity, COALESCE(SUM(sale_items.line_total), 0) as revenue").
		Joins("JOIN sales ON sales.id = sale_items.sale_id").
		Where("sales.created_at BETWEEN ? AND ?", start, end).
		Group("sale_items.product_id, sale_items.name").
		Order("quantity DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Scan(&ranking).Error
	return ranking, err
}
