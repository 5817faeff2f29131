package model

import "github.com/shopspring/decimal"

const MaxObservationLength = 200

type ProductSnapshot struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Price            decimal.Decimal `json:"price"`
	Category         string          `json:"category"`
	NeedsPreparation bool            `json:"needs_preparation"`
}

type CartItem struct {
	Product             ProductSnapshot      `json:"product"`
	Quantity            int                  `json:"quantity"`
	Observation         string               `json:"observation,omitempty"`
	IsComposite         bool                 `json:"is_composite,omitempty"`
	CompositeID         string               `json:"composite_id,omitempty"`
	PortionID           string               `json:"portion_id,omitempty"`
	SelectedIngredients []SelectedIngredient `json:"selected_ingredients,omitempty"`

	// Set once the ingredient stock for this line has been taken, so settlement skips it
	IngredientsDeducted bool `json:"ingredients_deducted,omitempty"`
}

// TracksIngredients reports whether stock is consumed per ingredient instead of per unit
func (i CartItem) TracksIngredients() bool {
	return len(i.SelectedIngredients) > 0
}

func (i CartItem) LineTotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

func (i CartItem) Clone() CartItem {
	out := i
	out.SelectedIngredients = append([]SelectedIngredient(nil), i.SelectedIngredients...)
	return out
}

func CloneItems(items []CartItem) []CartItem {
	out := make([]CartItem, len(items))
	for idx, item := range items {
		out[idx] = item.Clone()
	}
	return out
}

type CartKind string

const (
	CartTable   CartKind = "table"
	CartCounter CartKind = "counter"
)

// Cart stages lines before checkout. It never looks at stock.
type Cart struct {
	Kind  CartKind   `json:"kind"`
	Items []CartItem `json:"items"`

	// Counter carts loaded from a table tab carry the table number
	ComandaNumber int    `json:"comanda_number,omitempty"`
	CustomerName  string `json:"customer_name,omitempty"`
	// ids of the table orders billed by this cart
	TabOrders []string `json:"tab_orders,omitempty"`
}

func NewCart(kind CartKind) *Cart {
	return &Cart{Kind: kind, Items: []CartItem{}}
}

// AddSimple merges into a plain line with the same product and observation
func (c *Cart) AddSimple(product ProductSnapshot, qty int, observation string) {
	for idx := range c.Items {
		line := &c.Items[idx]
		if !line.IsComposite && line.PortionID == "" && line.Product.ID == product.ID && line.Observation == observation {
			line.Quantity += qty
			return
		}
	}
	c.Items = append(c.Items, CartItem{
		Product:     product,
		Quantity:    qty,
		Observation: observation,
	})
}

// AddComposite always appends; every customization stays its own line
func (c *Cart) AddComposite(product ProductSnapshot, compositeID string, selected []SelectedIngredient, observation string, qty int) {
	c.Items = append(c.Items, CartItem{
		Product:             product,
		Quantity:            qty,
		Observation:         observation,
		IsComposite:         true,
		CompositeID:         compositeID,
		SelectedIngredients: append([]SelectedIngredient(nil), selected...),
	})
}

// AddPortion merges lines of the same portion and observation since the recipe is fixed
func (c *Cart) AddPortion(portion Portion, qty int, observation string) {
	for idx := range c.Items {
		line := &c.Items[idx]
		if line.PortionID == portion.ID && line.Observation == observation && !line.IngredientsDeducted {
			line.Quantity += qty
			return
		}
	}
	c.Items = append(c.Items, CartItem{
		Product:             portion.Snapshot(),
		Quantity:            qty,
		Observation:         observation,
		PortionID:           portion.ID,
		SelectedIngredients: portion.SelectedIngredients(),
	})
}

// UpdateQuantity applies delta and drops the line when it reaches zero
func (c *Cart) UpdateQuantity(index, delta int) bool {
	if index < 0 || index >= len(c.Items) {
		return false
	}
	qty := c.Items[index].Quantity + delta
	if qty <= 0 {
		return c.Remove(index)
	}
	c.Items[index].Quantity = qty
	return true
}

func (c *Cart) Remove(index int) bool {
	if index < 0 || index >= len(c.Items) {
		return false
	}
	c.Items = append(c.Items[:index], c.Items[index+1:]...)
	return true
}

func (c *Cart) Clear() {
	c.Items = []CartItem{}
	c.ComandaNumber = 0
	c.CustomerName = ""
	c.TabOrders = nil
}

// LoadTab replaces the lines with a table's billable items and remembers
// which orders produced them
func (c *Cart) LoadTab(table int, items []CartItem, orderIDs []string) {
	c.Items = CloneItems(items)
	c.ComandaNumber = table
	c.TabOrders = append([]string(nil), orderIDs...)
}

func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

func (c *Cart) NeedsPreparation() bool {
	for _, item := range c.Items {
		if item.Product.NeedsPreparation {
			return true
		}
	}
	return false
}

func (c *Cart) Clone() *Cart {
	out := *c
	out.Items = CloneItems(c.Items)
	out.TabOrders = append([]string(nil), c.TabOrders...)
	return &out
}
