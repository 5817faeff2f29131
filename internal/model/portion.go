package model

import "github.com/shopspring/decimal"

type PortionIngredient struct {
	ProductID     string      `json:"product_id" validate:"required"`
	ProductName   string      `json:"product_name"`
	ConsumeAmount float64     `json:"consume_amount" validate:"gt=0"`
	Unit          MeasureUnit `json:"unit" validate:"required,oneof=g ml un"`
}

// Portion is a fixed recipe sold at the counter
type Portion struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Price       decimal.Decimal     `json:"price"`
	Category    string              `json:"category"`
	Active      bool                `json:"active"`
	Ingredients []PortionIngredient `json:"ingredients"`
}

func (p Portion) Snapshot() ProductSnapshot {
	return ProductSnapshot{
		ID:               p.ID,
		Name:             p.Name,
		Price:            p.Price,
		Category:         p.Category,
		NeedsPreparation: true,
	}
}

// SelectedIngredients freezes the recipe with every ingredient included
func (p Portion) SelectedIngredients() []SelectedIngredient {
	out := make([]SelectedIngredient, 0, len(p.Ingredients))
	for _, ing := range p.Ingredients {
		out = append(out, SelectedIngredient{
			ProductID:   ing.ProductID,
			ProductName: ing.ProductName,
			Quantity:    ing.ConsumeAmount,
			MeasureUnit: ing.Unit,
			Included:    true,
		})
	}
	return out
}

func (p Portion) Clone() Portion {
	out := p
	out.Ingredients = append([]PortionIngredient(nil), p.Ingredients...)
	return out
}
