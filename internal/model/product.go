package model

import "github.com/shopspring/decimal"

type ProductType string

const (
	ProductWhole      ProductType = "whole"
	ProductFractional ProductType = "fractional"
)

type MeasureUnit string

const (
	UnitGram       MeasureUnit = "g"
	UnitMilliliter MeasureUnit = "ml"
	UnitPiece      MeasureUnit = "un"
)

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name" validate:"required"`
	Icon string `json:"icon"`
}

type Product struct {
	ID               string          `json:"id"`
	Name             string          `json:"name" validate:"required"`
	Description      string          `json:"description"`
	Price            decimal.Decimal `json:"price"`
	CostPrice        decimal.Decimal `json:"cost_price"`
	Category         string          `json:"category" validate:"required"`
	ProductType      ProductType     `json:"product_type" validate:"required,oneof=whole fractional"`
	NeedsPreparation bool            `json:"needs_preparation"`
	Active           bool            `json:"active"`

	// Fractional only: the ledger keeps StockUnits * UnitVolume
	MeasureUnit MeasureUnit `json:"measure_unit,omitempty"`
	UnitVolume  float64     `json:"unit_volume,omitempty"`
	StockUnits  float64     `json:"stock_units,omitempty"`
}

func (p Product) IsFractional() bool {
	return p.ProductType == ProductFractional
}

// Snapshot freezes the fields a cart line needs
func (p Product) Snapshot() ProductSnapshot {
	return ProductSnapshot{
		ID:               p.ID,
		Name:             p.Name,
		Price:            p.Price,
		Category:         p.Category,
		NeedsPreparation: p.NeedsPreparation,
	}
}
