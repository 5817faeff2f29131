package service

import (
	"log"
	"sync"

	"comanda-pos/internal/model"
	"comanda-pos/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CategoryRequest struct {
	Name string `json:"name" validate:"required"`
	Icon string `json:"icon"`
}

type UpdateCategoryRequest struct {
	Name *string `json:"name"`
	Icon *string `json:"icon"`
}

type CreateProductRequest struct {
	Name             string            `json:"name" validate:"required"`
	Description      string            `json:"description"`
	Price            decimal.Decimal   `json:"price" validate:"gte=0"`
	CostPrice        decimal.Decimal   `json:"cost_price" validate:"gte=0"`
	Category         string            `json:"category" validate:"required"`
	ProductType      model.ProductType `json:"product_type" validate:"required,oneof=whole fractional"`
	NeedsPreparation bool              `json:"needs_preparation"`
	Active           *bool             `json:"active"`
	MeasureUnit      model.MeasureUnit `json:"measure_unit" validate:"omitempty,oneof=g ml"`
	UnitVolume       float64           `json:"unit_volume" validate:"gte=0"`
	StockUnits       float64           `json:"stock_units" validate:"gte=0"`
	Stock            float64           `json:"stock" validate:"gte=0"` // whole products only
}

type UpdateProductRequest struct {
	Name             *string            `json:"name"`
	Description      *string            `json:"description"`
	Price            *decimal.Decimal   `json:"price" validate:"omitempty,gte=0"`
	CostPrice        *decimal.Decimal   `json:"cost_price" validate:"omitempty,gte=0"`
	Category         *string            `json:"category"`
	NeedsPreparation *bool              `json:"needs_preparation"`
	Active           *bool              `json:"active"`
	MeasureUnit      *model.MeasureUnit `json:"measure_unit" validate:"omitempty,oneof=g ml"`
	UnitVolume       *float64           `json:"unit_volume" validate:"omitempty,gt=0"`
}

type CreateCompositeRequest struct {
	Name        string                      `json:"name" validate:"required"`
	Description string                      `json:"description"`
	Price       decimal.Decimal             `json:"price"`
	CostPrice   *decimal.Decimal            `json:"cost_price" validate:"omitempty,gte=0"`
	Type        model.CompositeType         `json:"type" validate:"required,oneof=lanche porcao dose"`
	Category    string                      `json:"category"`
	Active      *bool                       `json:"active"`
	Ingredients []model.CompositeIngredient `json:"ingredients" validate:"dive"`
}

type UpdateCompositeRequest struct {
	Name        *string                      `json:"name"`
	Description *string                      `json:"description"`
	Price       *decimal.Decimal             `json:"price"`
	CostPrice   *decimal.Decimal             `json:"cost_price" validate:"omitempty,gte=0"`
	Type        *model.CompositeType         `json:"type" validate:"omitempty,oneof=lanche porcao dose"`
	Category    *string                      `json:"category"`
	Active      *bool                        `json:"active"`
	Ingredients *[]model.CompositeIngredient `json:"ingredients" validate:"omitempty,dive"`
}

type CreatePortionRequest struct {
	Name        string                    `json:"name" validate:"required"`
	Description string                    `json:"description"`
	Price       decimal.Decimal           `json:"price"`
	Category    string                    `json:"category" validate:"required"`
	Active      *bool                     `json:"active"`
	Ingredients []model.PortionIngredient `json:"ingredients" validate:"dive"`
}

type UpdatePortionRequest struct {
	Name        *string                    `json:"name"`
	Description *string                    `json:"description"`
	Price       *decimal.Decimal           `json:"price"`
	Category    *string                    `json:"category"`
	Active      *bool                      `json:"active"`
	Ingredients *[]model.PortionIngredient `json:"ingredients" validate:"omitempty,dive"`
}

// Menu is what the table-side menu renders
type Menu struct {
	Categories []model.Category                               `json:"categories"`
	Products   []model.Product                                `json:"products"`
	Composites map[model.CompositeType][]model.CompositeProduct `json:"composites"`
	Portions   []model.Portion                                `json:"portions"`
}

// Catalog is the registry of categories, products, composites and portions.
// Creating or deleting a product keeps the stock ledger entry in step.
type Catalog struct {
	mu              sync.RWMutex
	categories      []model.Category
	products        []model.Product
	composites      []model.CompositeProduct
	portions        []model.Portion
	stock           *StockLedger
	lowStockDefault float64
}

func NewCatalog(stock *StockLedger, lowStockDefault float64) *Catalog {
	return &Catalog{stock: stock, lowStockDefault: lowStockDefault}
}

// SeedDefaults loads the demo menu and opening stock
func (c *Catalog) SeedDefaults() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.categories = append([]model.Category(nil), model.DefaultCategories...)
	c.products = append([]model.Product(nil), model.DefaultProducts...)
	c.composites = nil
	for _, comp := range model.DefaultComposites {
		c.composites = append(c.composites, comp.Clone())
	}
	c.portions = nil
	for _, p := range model.DefaultPortions {
		c.portions = append(c.portions, p.Clone())
	}
	for _, p := range c.products {
		c.trackStock(p, model.DefaultWholeStock)
	}
	log.Printf("catalog seeded: %d products, %d composites, %d portions", len(c.products), len(c.composites), len(c.portions))
}

func (c *Catalog) trackStock(p model.Product, wholeQty float64) {
	item := model.StockItem{
		ProductID:   p.ID,
		ProductName: p.Name,
		ProductType: p.ProductType,
		Quantity:    wholeQty,
		MinQuantity: c.lowStockDefault,
	}
	if p.IsFractional() {
		item.Quantity = p.StockUnits * p.UnitVolume
		item.MinQuantity = p.UnitVolume * 0.5
	}
	c.stock.Track(item)
}

// ---- categories ----

func (c *Catalog) Categories() []model.Category {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]model.Category(nil), c.categories...)
}

func (c *Catalog) CreateCategory(req *CategoryRequest) (model.Category, error) {
	if err := validateRequest(req); err != nil {
		return model.Category{}, err
	}
	category := model.Category{ID: uuid.NewString(), Name: req.Name, Icon: req.Icon}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.categories = append(c.categories, category)
	return category, nil
}

func (c *Catalog) UpdateCategory(id string, req *UpdateCategoryRequest) (model.Category, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.categories {
		if c.categories[i].ID != id {
			continue
		}
		if req.Name != nil {
			if *req.Name == "" {
				return model.Category{}, &ValidationError{Field: "UpdateCategoryRequest.Name", Tag: "required"}
			}
			c.categories[i].Name = *req.Name
		}
		if req.Icon != nil {
			c.categories[i].Icon = *req.Icon
		}
		return c.categories[i], nil
	}
	return model.Category{}, ErrCategoryNotFound
}

// DeleteCategory removes the category and every product filed under it
func (c *Catalog) DeleteCategory(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := -1
	for i, cat := range c.categories {
		if cat.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrCategoryNotFound
	}
	c.categories = append(c.categories[:idx], c.categories[idx+1:]...)

	kept := c.products[:0]
	removed := 0
	for _, p := range c.products {
		if p.Category == id {
			c.stock.Forget(p.ID)
			removed++
			continue
		}
		kept = append(kept, p)
	}
	c.products = kept
	log.Printf("category %s deleted with %d products", id, removed)
	return nil
}

// ---- products ----

func (c *Catalog) Products() []model.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]model.Product(nil), c.products...)
}

func (c *Catalog) Product(id string) (model.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Product{}, ErrProductNotFound
}

func (c *Catalog) WholeProducts() []model.Product {
	return c.filterProducts(func(p model.Product) bool { return p.ProductType == model.ProductWhole })
}

func (c *Catalog) FractionalProducts() []model.Product {
	return c.filterProducts(func(p model.Product) bool { return p.ProductType == model.ProductFractional })
}

// ActiveProducts are the whole products sold directly
func (c *Catalog) ActiveProducts() []model.Product {
	return c.filterProducts(func(p model.Product) bool { return p.Active && !p.IsFractional() })
}

func (c *Catalog) ProductsByCategory(categoryID string) []model.Product {
	return c.filterProducts(func(p model.Product) bool { return p.Category == categoryID })
}

func (c *Catalog) filterProducts(keep func(model.Product) bool) []model.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []model.Product
	for _, p := range c.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) CreateProduct(req *CreateProductRequest) (model.Product, error) {
	if err := validateRequest(req); err != nil {
		return model.Product{}, err
	}
	switch req.ProductType {
	case model.ProductWhole:
		if !req.Price.IsPositive() {
			return model.Product{}, ErrInvalidPrice
		}
	case model.ProductFractional:
		if req.UnitVolume <= 0 || req.StockUnits <= 0 || req.MeasureUnit == "" {
			return model.Product{}, ErrMissingUnitVolume
		}
	}

	product := model.Product{
		ID:               uuid.NewString(),
		Name:             req.Name,
		Description:      req.Description,
		Price:            req.Price,
		CostPrice:        req.CostPrice,
		Category:         req.Category,
		ProductType:      req.ProductType,
		NeedsPreparation: req.NeedsPreparation,
		Active:           req.Active == nil || *req.Active,
	}
	if product.IsFractional() {
		product.MeasureUnit = req.MeasureUnit
		product.UnitVolume = req.UnitVolume
		product.StockUnits = req.StockUnits
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.hasCategoryLocked(product.Category) {
		return model.Product{}, ErrCategoryNotFound
	}
	c.products = append(c.products, product)
	c.trackStock(product, req.Stock)
	return product, nil
}

func (c *Catalog) UpdateProduct(id string, req *UpdateProductRequest) (model.Product, error) {
	if err := validateRequest(req); err != nil {
		return model.Product{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.products {
		if c.products[i].ID != id {
			continue
		}
		p := c.products[i]
		if req.Name != nil {
			if *req.Name == "" {
				return model.Product{}, &ValidationError{Field: "UpdateProductRequest.Name", Tag: "required"}
			}
			p.Name = *req.Name
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if req.Price != nil {
			if p.ProductType == model.ProductWhole && !req.Price.IsPositive() {
				return model.Product{}, ErrInvalidPrice
			}
			p.Price = *req.Price
		}
		if req.CostPrice != nil {
			p.CostPrice = *req.CostPrice
		}
		if req.Category != nil {
			if !c.hasCategoryLocked(*req.Category) {
				return model.Product{}, ErrCategoryNotFound
			}
			p.Category = *req.Category
		}
		if req.NeedsPreparation != nil {
			p.NeedsPreparation = *req.NeedsPreparation
		}
		if req.Active != nil {
			p.Active = *req.Active
		}
		if p.IsFractional() {
			if req.MeasureUnit != nil {
				p.MeasureUnit = *req.MeasureUnit
			}
			if req.UnitVolume != nil {
				p.UnitVolume = *req.UnitVolume
			}
		}
		c.products[i] = p
		c.stock.Rename(p.ID, p.Name)
		return p, nil
	}
	return model.Product{}, ErrProductNotFound
}

func (c *Catalog) DeleteProduct(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, p := range c.products {
		if p.ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			c.stock.Forget(id)
			return nil
		}
	}
	return ErrProductNotFound
}

// ---- composites ----

func (c *Catalog) Composites() []model.CompositeProduct {
	return c.filterComposites(func(model.CompositeProduct) bool { return true })
}

func (c *Catalog) Composite(id string) (model.CompositeProduct, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, comp := range c.composites {
		if comp.ID == id {
			return comp.Clone(), nil
		}
	}
	return model.CompositeProduct{}, ErrCompositeNotFound
}

func (c *Catalog) ByType(t model.CompositeType) []model.CompositeProduct {
	return c.filterComposites(func(comp model.CompositeProduct) bool { return comp.Type == t })
}

func (c *Catalog) ActiveByType(t model.CompositeType) []model.CompositeProduct {
	return c.filterComposites(func(comp model.CompositeProduct) bool { return comp.Type == t && comp.Active })
}

func (c *Catalog) filterComposites(keep func(model.CompositeProduct) bool) []model.CompositeProduct {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []model.CompositeProduct
	for _, comp := range c.composites {
		if keep(comp) {
			out = append(out, comp.Clone())
		}
	}
	return out
}

func (c *Catalog) CreateComposite(req *CreateCompositeRequest) (model.CompositeProduct, error) {
	if err := validateRequest(req); err != nil {
		return model.CompositeProduct{}, err
	}
	if !req.Price.IsPositive() {
		return model.CompositeProduct{}, ErrInvalidPrice
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	ingredients, err := c.resolveCompositeIngredientsLocked(req.Ingredients)
	if err != nil {
		return model.CompositeProduct{}, err
	}
	composite := model.CompositeProduct{
		ID:               uuid.NewString(),
		Name:             req.Name,
		Description:      req.Description,
		Price:            req.Price,
		CostPrice:        req.CostPrice,
		Type:             req.Type,
		Category:         req.Category,
		Active:           req.Active == nil || *req.Active,
		NeedsPreparation: true,
		Ingredients:      ingredients,
	}
	c.composites = append(c.composites, composite)
	return composite.Clone(), nil
}

func (c *Catalog) UpdateComposite(id string, req *UpdateCompositeRequest) (model.CompositeProduct, error) {
	if err := validateRequest(req); err != nil {
		return model.CompositeProduct{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.composites {
		comp := &c.composites[i]
		if comp.ID != id {
			continue
		}
		updated := comp.Clone()
		if req.Name != nil {
			if *req.Name == "" {
				return model.CompositeProduct{}, &ValidationError{Field: "UpdateCompositeRequest.Name", Tag: "required"}
			}
			updated.Name = *req.Name
		}
		if req.Description != nil {
			updated.Description = *req.Description
		}
		if req.Price != nil {
			if !req.Price.IsPositive() {
				return model.CompositeProduct{}, ErrInvalidPrice
			}
			updated.Price = *req.Price
		}
		if req.CostPrice != nil {
			cost := *req.CostPrice
			updated.CostPrice = &cost
		}
		if req.Type != nil {
			updated.Type = *req.Type
		}
		if req.Category != nil {
			updated.Category = *req.Category
		}
		if req.Active != nil {
			updated.Active = *req.Active
		}
		if req.Ingredients != nil {
			ingredients, err := c.resolveCompositeIngredientsLocked(*req.Ingredients)
			if err != nil {
				return model.CompositeProduct{}, err
			}
			updated.Ingredients = ingredients
		}
		*comp = updated
		return updated.Clone(), nil
	}
	return model.CompositeProduct{}, ErrCompositeNotFound
}

func (c *Catalog) DeleteComposite(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, comp := range c.composites {
		if comp.ID == id {
			c.composites = append(c.composites[:i], c.composites[i+1:]...)
			return nil
		}
	}
	return ErrCompositeNotFound
}

func (c *Catalog) resolveCompositeIngredientsLocked(in []model.CompositeIngredient) ([]model.CompositeIngredient, error) {
	out := make([]model.CompositeIngredient, 0, len(in))
	for _, ing := range in {
		p, ok := c.productLocked(ing.ProductID)
		if !ok {
			return nil, ErrUnknownIngredient
		}
		if ing.ProductName == "" {
			ing.ProductName = p.Name
		}
		if ing.Requirement == model.RequirementRequired {
			ing.IsDefault = true
		}
		out = append(out, ing)
	}
	return out, nil
}

// ---- portions ----

func (c *Catalog) Portions() []model.Portion {
	return c.filterPortions(func(model.Portion) bool { return true })
}

func (c *Catalog) ActivePortions() []model.Portion {
	return c.filterPortions(func(p model.Portion) bool { return p.Active })
}

func (c *Catalog) Portion(id string) (model.Portion, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.portions {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return model.Portion{}, ErrPortionNotFound
}

func (c *Catalog) filterPortions(keep func(model.Portion) bool) []model.Portion {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []model.Portion
	for _, p := range c.portions {
		if keep(p) {
			out = append(out, p.Clone())
		}
	}
	return out
}

func (c *Catalog) CreatePortion(req *CreatePortionRequest) (model.Portion, error) {
	if err := validateRequest(req); err != nil {
		return model.Portion{}, err
	}
	if !req.Price.IsPositive() {
		return model.Portion{}, ErrInvalidPrice
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	ingredients, err := c.resolvePortionIngredientsLocked(req.Ingredients)
	if err != nil {
		return model.Portion{}, err
	}
	portion := model.Portion{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Active:      req.Active == nil || *req.Active,
		Ingredients: ingredients,
	}
	c.portions = append(c.portions, portion)
	return portion.Clone(), nil
}

func (c *Catalog) UpdatePortion(id string, req *UpdatePortionRequest) (model.Portion, error) {
	if err := validateRequest(req); err != nil {
		return model.Portion{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.portions {
		portion := &c.portions[i]
		if portion.ID != id {
			continue
		}
		updated := portion.Clone()
		if req.Name != nil {
			if *req.Name == "" {
				return model.Portion{}, &ValidationError{Field: "UpdatePortionRequest.Name", Tag: "required"}
			}
			updated.Name = *req.Name
		}
		if req.Description != nil {
			updated.Description = *req.Description
		}
		if req.Price != nil {
			if !req.Price.IsPositive() {
				return model.Portion{}, ErrInvalidPrice
			}
			updated.Price = *req.Price
		}
		if req.Category != nil {
			updated.Category = *req.Category
		}
		if req.Active != nil {
			updated.Active = *req.Active
		}
		if req.Ingredients != nil {
			ingredients, err := c.resolvePortionIngredientsLocked(*req.Ingredients)
			if err != nil {
				return model.Portion{}, err
			}
			updated.Ingredients = ingredients
		}
		*portion = updated
		return updated.Clone(), nil
	}
	return model.Portion{}, ErrPortionNotFound
}

func (c *Catalog) DeletePortion(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, p := range c.portions {
		if p.ID == id {
			c.portions = append(c.portions[:i], c.portions[i+1:]...)
			return nil
		}
	}
	return ErrPortionNotFound
}

func (c *Catalog) resolvePortionIngredientsLocked(in []model.PortionIngredient) ([]model.PortionIngredient, error) {
	if len(in) == 0 {
		return nil, ErrNoIngredients
	}
	seen := make(map[string]bool)
	out := make([]model.PortionIngredient, 0, len(in))
	for _, ing := range in {
		if seen[ing.ProductID] {
			return nil, ErrDuplicateIngredient
		}
		seen[ing.ProductID] = true
		p, ok := c.productLocked(ing.ProductID)
		if !ok {
			return nil, ErrUnknownIngredient
		}
		if ing.ProductName == "" {
			ing.ProductName = p.Name
		}
		out = append(out, ing)
	}
	return out, nil
}

// Menu gathers what is on sale right now
func (c *Catalog) Menu() Menu {
	menu := Menu{
		Categories: c.Categories(),
		Products:   c.ActiveProducts(),
		Composites: make(map[model.CompositeType][]model.CompositeProduct),
		Portions:   c.ActivePortions(),
	}
	for _, t := range []model.CompositeType{model.CompositeLanche, model.CompositePorcao, model.CompositeDose} {
		if active := c.ActiveByType(t); len(active) > 0 {
			menu.Composites[t] = active
		}
	}
	return menu
}

func (c *Catalog) productLocked(id string) (model.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

func (c *Catalog) hasCategoryLocked(id string) bool {
	for _, cat := range c.categories {
		if cat.ID == id {
			return true
		}
	}
	return false
}

func validateRequest(req interface{}) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		log.Printf("validation error: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
		return &ValidationError{Field: first.FailedField, Tag: first.Tag}
	}
	return nil
}
