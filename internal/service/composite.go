package service

import "comanda-pos/internal/model"

// ResolveIngredients freezes the inclusion decision for one composite line.
// Untouched ingredients keep IsDefault and required ones are always included.
func ResolveIngredients(composite model.CompositeProduct, toggles map[string]bool) []model.SelectedIngredient {
	selected := make([]model.SelectedIngredient, 0, len(composite.Ingredients))
	for _, ing := range composite.Ingredients {
		included := ing.IsDefault
		if choice, ok := toggles[ing.ProductID]; ok {
			included = choice
		}
		if ing.Requirement == model.RequirementRequired {
			included = true
		}
		selected = append(selected, model.SelectedIngredient{
			ProductID:   ing.ProductID,
			ProductName: ing.ProductName,
			Quantity:    ing.Quantity,
			MeasureUnit: ing.MeasureUnit,
			Included:    included,
		})
	}
	return selected
}

// IngredientDeductions expands the included ingredients of a line into a stock plan
func IngredientDeductions(selected []model.SelectedIngredient, lineQty int) []Deduction {
	var plan []Deduction
	for _, ing := range selected {
		if !ing.Included {
			continue
		}
		plan = append(plan, Deduction{
			ProductID:   ing.ProductID,
			ProductName: ing.ProductName,
			Amount:      ing.Quantity * float64(lineQty),
			Fractional:  ing.MeasureUnit != model.UnitPiece,
		})
	}
	return plan
}

// tableSubmissionPlan covers ingredient-tracked lines not deducted yet
func tableSubmissionPlan(items []model.CartItem) []Deduction {
	var plan []Deduction
	for _, item := range items {
		if item.TracksIngredients() && !item.IngredientsDeducted {
			plan = append(plan, IngredientDeductions(item.SelectedIngredients, item.Quantity)...)
		}
	}
	return plan
}

// settlementPlan deducts ingredients for tracked lines still owing stock and
// whole units for plain lines
func settlementPlan(items []model.CartItem) []Deduction {
	var plan []Deduction
	for _, item := range items {
		switch {
		case item.IngredientsDeducted:
		case item.TracksIngredients():
			plan = append(plan, IngredientDeductions(item.SelectedIngredients, item.Quantity)...)
		case !item.IsComposite && item.PortionID == "":
			plan = append(plan, Deduction{
				ProductID:   item.Product.ID,
				ProductName: item.Product.Name,
				Amount:      float64(item.Quantity),
			})
		}
	}
	return plan
}
