package model

import "github.com/shopspring/decimal"

type CompositeType string

const (
	CompositeLanche CompositeType = "lanche"
	CompositePorcao CompositeType = "porcao"
	CompositeDose   CompositeType = "dose"
)

type Requirement string

const (
	RequirementRequired  Requirement = "required"
	RequirementOptional  Requirement = "optional"
	RequirementRemovable Requirement = "removable"
)

type CompositeIngredient struct {
	ProductID   string      `json:"product_id" validate:"required"`
	ProductName string      `json:"product_name"`
	Quantity    float64     `json:"quantity" validate:"gt=0"`
	MeasureUnit MeasureUnit `json:"measure_unit" validate:"required,oneof=g ml un"`
	Requirement Requirement `json:"requirement" validate:"required,oneof=required optional removable"`
	IsDefault   bool        `json:"is_default"`
}

type CompositeProduct struct {
	ID               string                `json:"id"`
	Name             string                `json:"name"`
	Description      string                `json:"description"`
	Price            decimal.Decimal       `json:"price"`
	CostPrice        *decimal.Decimal      `json:"cost_price,omitempty"`
	Type             CompositeType         `json:"type"`
	Category         string                `json:"category"`
	Active           bool                  `json:"active"`
	NeedsPreparation bool                  `json:"needs_preparation"`
	Ingredients      []CompositeIngredient `json:"ingredients"`
}

// Margin is price minus cost, nil when no cost is recorded
func (c CompositeProduct) Margin() *decimal.Decimal {
	if c.CostPrice == nil {
		return nil
	}
	m := c.Price.Sub(*c.CostPrice)
	return &m
}

func (c CompositeProduct) Snapshot() ProductSnapshot {
	return ProductSnapshot{
		ID:               c.ID,
		Name:             c.Name,
		Price:            c.Price,
		Category:         c.Category,
		NeedsPreparation: c.NeedsPreparation,
	}
}

func (c CompositeProduct) Clone() CompositeProduct {
	out := c
	out.Ingredients = append([]CompositeIngredient(nil), c.Ingredients...)
	if c.CostPrice != nil {
		cost := *c.CostPrice
		out.CostPrice = &cost
	}
	return out
}

// SelectedIngredient is the per-line inclusion decision frozen at cart time
type SelectedIngredient struct {
	ProductID   string      `json:"product_id"`
	ProductName string      `json:"product_name"`
	Quantity    float64     `json:"quantity"`
	MeasureUnit MeasureUnit `json:"measure_unit"`
	Included    bool        `json:"included"`
}
