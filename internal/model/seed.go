package model

import "github.com/shopspring/decimal"

func brl(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func cost(v string) *decimal.Decimal {
	d := brl(v)
	return &d
}

const CategoryIngredients = "insumos"

var DefaultCategories = []Category{
	{ID: "acai", Name: "Açaí", Icon: "🍇"},
	{ID: "lanches", Name: "Lanches", Icon: "🍔"},
	{ID: "hotdog", Name: "Hot-Dog", Icon: "🌭"},
	{ID: "porcoes", Name: "Porções", Icon: "🍗"},
	{ID: "batata", Name: "Batata Frita", Icon: "🍟"},
	{ID: "pasteis", Name: "Pastéis", Icon: "🥟"},
	{ID: "bebidas", Name: "Bebidas", Icon: "🥤"},
	{ID: CategoryIngredients, Name: "Insumos", Icon: "📦"},
}

// DefaultProducts covers the menu plus the ingredients consumed by composites and portions
var DefaultProducts = []Product{
	{ID: "acai-300", Name: "Açaí no Copo 300ml", Description: "2 frutas + leite condensado + 3 acompanhamentos", Price: brl("12.00"), Category: "acai", ProductType: ProductWhole, NeedsPreparation: true, Active: true},
	{ID: "acai-500", Name: "Açaí no Copo 500ml", Description: "3 frutas + leite condensado + 3 acompanhamentos", Price: brl("20.00"), Category: "acai", ProductType: ProductWhole, NeedsPreparation: true, Active: true},
	{ID: "dog-simples", Name: "Dog Simples", Description: "1 salsicha, purê, salada e batata palha", Price: brl("8.00"), Category: "hotdog", ProductType: ProductWhole, NeedsPreparation: true, Active: true},
	{ID: "dog-duplo", Name: "Dog Duplo", Description: "2 salsichas, purê, salada e batata palha", Price: brl("12.00"), Category: "hotdog", ProductType: ProductWhole, NeedsPreparation: true, Active: true},
	{ID: "calabresa-acebolada", Name: "Calabresa Acebolada", Description: "Linguiça calabresa, cebola e farofa", Price: brl("26.00"), Category: "porcoes", ProductType: ProductWhole, NeedsPreparation: true, Active: true},
	{ID: "pastel-carne", Name: "Pastel de Carne", Description: "Carne, azeitona verde e orégano", Price: brl("12.00"), Category: "pasteis", ProductType: ProductWhole, NeedsPreparation: true, Active: true},
	{ID: "pastel-queijo", Name: "Pastel de Queijo", Description: "Mussarela, azeitona verde e orégano", Price: brl("12.00"), Category: "pasteis", ProductType: ProductWhole, NeedsPreparation: true, Active: true},
	{ID: "refri-lata", Name: "Refrigerante Lata 350ml", Price: brl("6.00"), Category: "bebidas", ProductType: ProductWhole, Active: true},
	{ID: "agua-500", Name: "Água Mineral 500ml", Price: brl("4.00"), Category: "bebidas", ProductType: ProductWhole, Active: true},

	{ID: "ing-pao", Name: "Pão de hambúrguer", Category: CategoryIngredients, ProductType: ProductWhole, CostPrice: brl("1.20")},
	{ID: "ing-limao", Name: "Limão", Category: CategoryIngredients, ProductType: ProductWhole, CostPrice: brl("0.50")},
	{ID: "ing-carne", Name: "Hambúrguer 150g", Category: CategoryIngredients, ProductType: ProductFractional, MeasureUnit: UnitGram, UnitVolume: 1500, StockUnits: 4},
	{ID: "ing-queijo", Name: "Queijo", Category: CategoryIngredients, ProductType: ProductFractional, MeasureUnit: UnitGram, UnitVolume: 1000, StockUnits: 3},
	{ID: "ing-alface", Name: "Alface", Category: CategoryIngredients, ProductType: ProductFractional, MeasureUnit: UnitGram, UnitVolume: 500, StockUnits: 2},
	{ID: "ing-tomate", Name: "Tomate", Category: CategoryIngredients, ProductType: ProductFractional, MeasureUnit: UnitGram, UnitVolume: 1000, StockUnits: 2},
	{ID: "ing-molho", Name: "Molho especial", Category: CategoryIngredients, ProductType: ProductFractional, MeasureUnit: UnitMilliliter, UnitVolume: 1000, StockUnits: 2},
	{ID: "ing-bacon", Name: "Bacon", Category: CategoryIngredients, ProductType: ProductFractional, MeasureUnit: UnitGram, UnitVolume: 1000, StockUnits: 3},
	{ID: "ing-cebola", Name: "Cebola caramelizada", Category: CategoryIngredients, ProductType: ProductFractional, MeasureUnit: UnitGram, UnitVolume: 500, StockUnits: 2},
	{ID: "ing-batata", Name: "Batata", Category: CategoryIngredients, ProductType: ProductFractional, MeasureUnit: UnitGram, UnitVolume: 2500, StockUnits: 4},
	{ID: "ing-sal", Name: "Sal", Category: CategoryIngredients, ProductType: ProductFractional, MeasureUnit: UnitGram, UnitVolume: 1000, StockUnits: 1},
	{ID: "ing-cheddar", Name: "Cheddar cremoso", Category: CategoryIngredients, ProductType: ProductFractional, MeasureUnit: UnitMilliliter, UnitVolume: 1500, StockUnits: 2},
	{ID: "ing-cachaca", Name: "Cachaça", Category: CategoryIngredients, ProductType: ProductFractional, MeasureUnit: UnitMilliliter, UnitVolume: 1000, StockUnits: 3},
	{ID: "ing-rum", Name: "Rum", Category: CategoryIngredients, ProductType: ProductFractional, MeasureUnit: UnitMilliliter, UnitVolume: 1000, StockUnits: 2},
	{ID: "ing-acucar", Name: "Açúcar", Category: CategoryIngredients, ProductType: ProductFractional, MeasureUnit: UnitGram, UnitVolume: 1000, StockUnits: 2},
	{ID: "ing-gelo", Name: "Gelo", Category: CategoryIngredients, ProductType: ProductFractional, MeasureUnit: UnitGram, UnitVolume: 5000, StockUnits: 2},
	{ID: "ing-hortela", Name: "Hortelã", Category: CategoryIngredients, ProductType: ProductFractional, MeasureUnit: UnitGram, UnitVolume: 200, StockUnits: 2},
	{ID: "ing-agua-gas", Name: "Água com gás", Category: CategoryIngredients, ProductType: ProductFractional, MeasureUnit: UnitMilliliter, UnitVolume: 1500, StockUnits: 4},
	{ID: "batata-congelada", Name: "Batata Congelada", Category: CategoryIngredients, ProductType: ProductFractional, MeasureUnit: UnitGram, UnitVolume: 2000, StockUnits: 5},
	{ID: "cheddar-liquido", Name: "Cheddar Líquido", Category: CategoryIngredients, ProductType: ProductFractional, MeasureUnit: UnitMilliliter, UnitVolume: 1000, StockUnits: 3},
	{ID: "bacon-picado", Name: "Bacon Picado", Category: CategoryIngredients, ProductType: ProductFractional, MeasureUnit: UnitGram, UnitVolume: 500, StockUnits: 3},
}

// DefaultWholeStock is the opening unit count for whole products
const DefaultWholeStock = 50

var DefaultComposites = []CompositeProduct{
	{
		ID: "lanche-1", Name: "X-Burguer", Description: "Hambúrguer com queijo, alface, tomate e molho especial",
		Price: brl("18.00"), CostPrice: cost("8.00"), Type: CompositeLanche, Category: "lanches", Active: true, NeedsPreparation: true,
		Ingredients: []CompositeIngredient{
			{ProductID: "ing-pao", ProductName: "Pão de hambúrguer", Quantity: 1, MeasureUnit: UnitPiece, Requirement: RequirementRequired, IsDefault: true},
			{ProductID: "ing-carne", ProductName: "Hambúrguer 150g", Quantity: 150, MeasureUnit: UnitGram, Requirement: RequirementRequired, IsDefault: true},
			{ProductID: "ing-queijo", ProductName: "Queijo", Quantity: 30, MeasureUnit: UnitGram, Requirement: RequirementRemovable, IsDefault: true},
			{ProductID: "ing-alface", ProductName: "Alface", Quantity: 20, MeasureUnit: UnitGram, Requirement: RequirementRemovable, IsDefault: true},
			{ProductID: "ing-tomate", ProductName: "Tomate", Quantity: 30, MeasureUnit: UnitGram, Requirement: RequirementRemovable, IsDefault: true},
			{ProductID: "ing-molho", ProductName: "Molho especial", Quantity: 15, MeasureUnit: UnitMilliliter, Requirement: RequirementRemovable, IsDefault: true},
			{ProductID: "ing-bacon", ProductName: "Bacon", Quantity: 40, MeasureUnit: UnitGram, Requirement: RequirementOptional, IsDefault: false},
		},
	},
	{
		ID: "lanche-2", Name: "X-Bacon", Description: "Hambúrguer com bacon crocante, queijo e cebola caramelizada",
		Price: brl("22.00"), CostPrice: cost("10.00"), Type: CompositeLanche, Category: "lanches", Active: true, NeedsPreparation: true,
		Ingredients: []CompositeIngredient{
			{ProductID: "ing-pao", ProductName: "Pão de hambúrguer", Quantity: 1, MeasureUnit: UnitPiece, Requirement: RequirementRequired, IsDefault: true},
			{ProductID: "ing-carne", ProductName: "Hambúrguer 150g", Quantity: 150, MeasureUnit: UnitGram, Requirement: RequirementRequired, IsDefault: true},
			{ProductID: "ing-bacon", ProductName: "Bacon", Quantity: 40, MeasureUnit: UnitGram, Requirement: RequirementRemovable, IsDefault: true},
			{ProductID: "ing-queijo", ProductName: "Queijo", Quantity: 30, MeasureUnit: UnitGram, Requirement: RequirementRemovable, IsDefault: true},
			{ProductID: "ing-cebola", ProductName: "Cebola caramelizada", Quantity: 25, MeasureUnit: UnitGram, Requirement: RequirementRemovable, IsDefault: true},
		},
	},
	{
		ID: "porcao-1", Name: "Batata Frita P", Description: "Porção pequena de batata frita crocante",
		Price: brl("15.00"), CostPrice: cost("5.00"), Type: CompositePorcao, Category: "batata", Active: true, NeedsPreparation: true,
		Ingredients: []CompositeIngredient{
			{ProductID: "ing-batata", ProductName: "Batata", Quantity: 200, MeasureUnit: UnitGram, Requirement: RequirementRequired, IsDefault: true},
			{ProductID: "ing-sal", ProductName: "Sal", Quantity: 5, MeasureUnit: UnitGram, Requirement: RequirementRemovable, IsDefault: true},
		},
	},
	{
		ID: "porcao-2", Name: "Batata com Cheddar", Description: "Batata frita com cheddar cremoso e bacon",
		Price: brl("25.00"), CostPrice: cost("10.00"), Type: CompositePorcao, Category: "batata", Active: true, NeedsPreparation: true,
		Ingredients: []CompositeIngredient{
			{ProductID: "ing-batata", ProductName: "Batata", Quantity: 300, MeasureUnit: UnitGram, Requirement: RequirementRequired, IsDefault: true},
			{ProductID: "ing-cheddar", ProductName: "Cheddar cremoso", Quantity: 80, MeasureUnit: UnitMilliliter, Requirement: RequirementRemovable, IsDefault: true},
			{ProductID: "ing-bacon", ProductName: "Bacon", Quantity: 30, MeasureUnit: UnitGram, Requirement: RequirementRemovable, IsDefault: true},
		},
	},
	{
		ID: "dose-1", Name: "Caipirinha", Description: "Caipirinha tradicional de limão",
		Price: brl("16.00"), CostPrice: cost("6.00"), Type: CompositeDose, Category: "bebidas", Active: true, NeedsPreparation: true,
		Ingredients: []CompositeIngredient{
			{ProductID: "ing-cachaca", ProductName: "Cachaça", Quantity: 50, MeasureUnit: UnitMilliliter, Requirement: RequirementRequired, IsDefault: true},
			{ProductID: "ing-limao", ProductName: "Limão", Quantity: 1, MeasureUnit: UnitPiece, Requirement: RequirementRequired, IsDefault: true},
			{ProductID: "ing-acucar", ProductName: "Açúcar", Quantity: 20, MeasureUnit: UnitGram, Requirement: RequirementRemovable, IsDefault: true},
			{ProductID: "ing-gelo", ProductName: "Gelo", Quantity: 100, MeasureUnit: UnitGram, Requirement: RequirementRemovable, IsDefault: true},
		},
	},
	{
		ID: "dose-2", Name: "Mojito", Description: "Drink refrescante com rum, hortelã e limão",
		Price: brl("20.00"), CostPrice: cost("8.00"), Type: CompositeDose, Category: "bebidas", Active: true, NeedsPreparation: true,
		Ingredients: []CompositeIngredient{
			{ProductID: "ing-rum", ProductName: "Rum", Quantity: 50, MeasureUnit: UnitMilliliter, Requirement: RequirementRequired, IsDefault: true},
			{ProductID: "ing-hortela", ProductName: "Hortelã", Quantity: 10, MeasureUnit: UnitGram, Requirement: RequirementRemovable, IsDefault: true},
			{ProductID: "ing-limao", ProductName: "Limão", Quantity: 1, MeasureUnit: UnitPiece, Requirement: RequirementRequired, IsDefault: true},
			{ProductID: "ing-acucar", ProductName: "Açúcar", Quantity: 15, MeasureUnit: UnitGram, Requirement: RequirementRemovable, IsDefault: true},
			{ProductID: "ing-agua-gas", ProductName: "Água com gás", Quantity: 100, MeasureUnit: UnitMilliliter, Requirement: RequirementRemovable, IsDefault: true},
		},
	},
}

var DefaultPortions = []Portion{
	{
		ID: "portion-batata-p", Name: "Batata P c/ Cheddar", Description: "Porção pequena de batata com cheddar",
		Price: brl("14.00"), Category: "batata", Active: true,
		Ingredients: []PortionIngredient{
			{ProductID: "batata-congelada", ProductName: "Batata Congelada", ConsumeAmount: 200, Unit: UnitGram},
			{ProductID: "cheddar-liquido", ProductName: "Cheddar Líquido", ConsumeAmount: 40, Unit: UnitMilliliter},
		},
	},
	{
		ID: "portion-batata-m", Name: "Batata M c/ Cheddar e Bacon", Description: "Porção média de batata com cheddar e bacon",
		Price: brl("20.00"), Category: "batata", Active: true,
		Ingredients: []PortionIngredient{
			{ProductID: "batata-congelada", ProductName: "Batata Congelada", ConsumeAmount: 350, Unit: UnitGram},
			{ProductID: "cheddar-liquido", ProductName: "Cheddar Líquido", ConsumeAmount: 60, Unit: UnitMilliliter},
			{ProductID: "bacon-picado", ProductName: "Bacon Picado", ConsumeAmount: 30, Unit: UnitGram},
		},
	},
	{
		ID: "portion-batata-g", Name: "Batata G c/ Cheddar e Bacon", Description: "Porção grande de batata com cheddar e bacon",
		Price: brl("28.00"), Category: "batata", Active: true,
		Ingredients: []PortionIngredient{
			{ProductID: "batata-congelada", ProductName: "Batata Congelada", ConsumeAmount: 500, Unit: UnitGram},
			{ProductID: "cheddar-liquido", ProductName: "Cheddar Líquido", ConsumeAmount: 100, Unit: UnitMilliliter},
			{ProductID: "bacon-picado", ProductName: "Bacon Picado", ConsumeAmount: 50, Unit: UnitGram},
		},
	},
}
