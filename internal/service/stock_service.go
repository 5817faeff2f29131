package service

import (
	"context"
	"strings"

	"comanda-pos/internal/model"
	"comanda-pos/internal/repository"
)

// StockEntryRequest carries the raw form values of a manual count.
// Fractional products are counted in whole units (bags, bottles).
type StockEntryRequest struct {
	Quantity    string `json:"quantity"`
	MinQuantity string `json:"min_quantity"`
}

type StockView struct {
	model.StockItem
	MeasureUnit model.MeasureUnit `json:"measure_unit,omitempty"`
	UnitVolume  float64           `json:"unit_volume,omitempty"`
	Units       float64           `json:"units"`
	Low         bool              `json:"low"`
}

type StockService interface {
	List() []StockView
	LowStock() []StockView
	Update(ctx context.Context, productID string, req *StockEntryRequest) (StockView, error)
	Movements(ctx context.Context, productID string, limit int) ([]model.StockMovement, error)
}

type stockService struct {
	stock     *StockLedger
	catalog   *Catalog
	movements repository.MovementRepository
	notifier  StockNotifier
}

func NewStockService(stock *StockLedger, catalog *Catalog, movements repository.MovementRepository, notifier StockNotifier) StockService {
	return &stockService{
		stock:     stock,
		catalog:   catalog,
		movements: movements,
		notifier:  notifier,
	}
}

func (s *stockService) List() []StockView {
	return s.views(s.stock.Items())
}

func (s *stockService) LowStock() []StockView {
	return s.views(s.stock.LowStockItems())
}

// Update applies a manual stock count. Non-numeric input counts as zero.
func (s *stockService) Update(ctx context.Context, productID string, req *StockEntryRequest) (StockView, error) {
	product, err := s.catalog.Product(productID)
	if err != nil {
		return StockView{}, err
	}

	quantity := ParseQuantity(req.Quantity)
	if product.IsFractional() {
		quantity = quantity * product.UnitVolume
	}

	movement, err := s.stock.Adjust(productID, quantity, "manual count", func(mv []model.StockMovement) error {
		return s.movements.Record(ctx, mv)
	})
	if err != nil {
		return StockView{}, err
	}
	if strings.TrimSpace(req.MinQuantity) != "" {
		if err := s.stock.SetMinQuantity(productID, ParseQuantity(req.MinQuantity)); err != nil {
			return StockView{}, err
		}
	}
	if s.notifier != nil {
		s.notifier.StockChanged([]model.StockMovement{movement})
	}

	item, _ := s.stock.Get(productID)
	return s.view(item, &product), nil
}

func (s *stockService) Movements(ctx context.Context, productID string, limit int) ([]model.StockMovement, error) {
	return s.movements.FindRecent(ctx, productID, limit)
}

func (s *stockService) views(items []model.StockItem) []StockView {
	out := make([]StockView, 0, len(items))
	for _, item := range items {
		var product *model.Product
		if p, err := s.catalog.Product(item.ProductID); err == nil {
			product = &p
		}
		out = append(out, s.view(item, product))
	}
	return out
}

func (s *stockService) view(item model.StockItem, product *model.Product) StockView {
	v := StockView{StockItem: item, Units: item.Quantity, Low: item.IsLow()}
	if product != nil && product.IsFractional() && product.UnitVolume > 0 {
		v.MeasureUnit = product.MeasureUnit
		v.UnitVolume = product.UnitVolume
		v.Units = item.Quantity / product.UnitVolume
	}
	return v
}
