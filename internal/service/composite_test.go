package service

import (
	"testing"

	"comanda-pos/internal/model"
)

func xBurguer() model.CompositeProduct {
	return model.CompositeProduct{
		ID:    "x-burguer",
		Name:  "X-Burguer",
		Price: money("18.00"),
		Ingredients: []model.CompositeIngredient{
			{ProductID: "pao", ProductName: "Pão", Quantity: 1, MeasureUnit: model.UnitPiece, Requirement: model.RequirementRequired, IsDefault: true},
			{ProductID: "carne", ProductName: "Carne", Quantity: 150, MeasureUnit: model.UnitGram, Requirement: model.RequirementRequired, IsDefault: true},
			{ProductID: "queijo", ProductName: "Queijo", Quantity: 30, MeasureUnit: model.UnitGram, Requirement: model.RequirementRemovable, IsDefault: true},
			{ProductID: "alface", ProductName: "Alface", Quantity: 20, MeasureUnit: model.UnitGram, Requirement: model.RequirementRemovable, IsDefault: true},
			{ProductID: "bacon", ProductName: "Bacon", Quantity: 40, MeasureUnit: model.UnitGram, Requirement: model.RequirementOptional, IsDefault: false},
		},
	}
}

func TestResolveIngredients(t *testing.T) {
	tests := []struct {
		name    string
		toggles map[string]bool
		want    map[string]bool
	}{
		{
			name:    "defaults",
			toggles: nil,
			want:    map[string]bool{"pao": true, "carne": true, "queijo": true, "alface": true, "bacon": false},
		},
		{
			name:    "remove cheese",
			toggles: map[string]bool{"queijo": false},
			want:    map[string]bool{"pao": true, "carne": true, "queijo": false, "alface": true, "bacon": false},
		},
		{
			name:    "required cannot be removed",
			toggles: map[string]bool{"carne": false, "pao": false},
			want:    map[string]bool{"pao": true, "carne": true, "queijo": true, "alface": true, "bacon": false},
		},
		{
			name:    "add extra",
			toggles: map[string]bool{"bacon": true, "alface": false},
			want:    map[string]bool{"pao": true, "carne": true, "queijo": true, "alface": false, "bacon": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selected := ResolveIngredients(xBurguer(), tt.toggles)
			if len(selected) != len(tt.want) {
				t.Fatalf("expected %d ingredients, got %d", len(tt.want), len(selected))
			}
			for _, ing := range selected {
				if ing.Included != tt.want[ing.ProductID] {
					t.Errorf("%s: expected included=%v", ing.ProductID, tt.want[ing.ProductID])
				}
			}
		})
	}
}

func TestIngredientDeductions(t *testing.T) {
	selected := ResolveIngredients(xBurguer(), map[string]bool{"queijo": false})
	plan := IngredientDeductions(selected, 2)

	got := make(map[string]Deduction)
	for _, d := range plan {
		got[d.ProductID] = d
	}
	if _, ok := got["queijo"]; ok {
		t.Error("excluded ingredient must not be deducted")
	}
	if _, ok := got["bacon"]; ok {
		t.Error("extra not chosen must not be deducted")
	}
	if d := got["carne"]; d.Amount != 300 || !d.Fractional {
		t.Errorf("unexpected carne deduction %+v", d)
	}
	if d := got["pao"]; d.Amount != 2 || d.Fractional {
		t.Errorf("piece ingredients use unit deduction, got %+v", d)
	}
}

func TestSettlementPlan(t *testing.T) {
	composite := model.CartItem{
		Product:             model.ProductSnapshot{ID: "x-burguer"},
		Quantity:            1,
		IsComposite:         true,
		SelectedIngredients: ResolveIngredients(xBurguer(), nil),
	}
	deducted := composite.Clone()
	deducted.IngredientsDeducted = true
	plain := model.CartItem{Product: model.ProductSnapshot{ID: "refri", Name: "Refri"}, Quantity: 3}
	loadedComposite := model.CartItem{Product: model.ProductSnapshot{ID: "x-burguer"}, Quantity: 2, IsComposite: true}

	plan := settlementPlan([]model.CartItem{composite, deducted, plain, loadedComposite})
	if len(plan) != 5 {
		t.Fatalf("expected 4 ingredients plus 1 unit line, got %d", len(plan))
	}
	last := plan[len(plan)-1]
	if last.ProductID != "refri" || last.Amount != 3 || last.Fractional {
		t.Errorf("unexpected plain deduction %+v", last)
	}

	if got := tableSubmissionPlan([]model.CartItem{plain, deducted}); len(got) != 0 {
		t.Errorf("table submission must skip plain and deducted lines, got %d", len(got))
	}
}
