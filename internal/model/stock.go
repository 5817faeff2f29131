package model

// StockItem holds units for whole products and total volume for fractional ones
type StockItem struct {
	ProductID   string      `json:"product_id"`
	ProductName string      `json:"product_name"`
	ProductType ProductType `json:"product_type"`
	Quantity    float64     `json:"quantity"`
	MinQuantity float64     `json:"min_quantity"`
}

func (s StockItem) IsLow() bool {
	return s.Quantity <= s.MinQuantity
}

type MovementType string

const (
	MovementSale       MovementType = "sale"
	MovementTableOrder MovementType = "table_order"
	MovementAdjustment MovementType = "adjustment"
)

// StockMovement is the audit row for every committed stock change
type StockMovement struct {
	BaseModel
	ProductID   string       `gorm:"type:varchar(64);not null;index" json:"product_id"`
	ProductName string       `gorm:"type:varchar(255)" json:"product_name"`
	Type        MovementType `gorm:"type:varchar(20);not null" json:"type"`
	Quantity    float64      `gorm:"not null" json:"quantity"` // negative = out
	PreviousQty float64      `json:"previous_qty"`
	NewQty      float64      `json:"new_qty"`
	Reference   string       `gorm:"type:varchar(255)" json:"reference"`
}
