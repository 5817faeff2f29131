package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SaleType string

const (
	SalePDV     SaleType = "pdv"
	SaleComanda SaleType = "comanda"
)

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "dinheiro"
	PaymentPix    PaymentMethod = "pix"
	PaymentDebit  PaymentMethod = "cartao_debito"
	PaymentCredit PaymentMethod = "cartao_credito"
)

func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCash, PaymentPix, PaymentDebit, PaymentCredit:
		return true
	}
	return false
}

// Sale is written once per settlement and never updated
type Sale struct {
	BaseModel
	Items         []SaleItem      `gorm:"foreignKey:SaleID" json:"items"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	Type          SaleType        `gorm:"type:varchar(10);not null;index" json:"type"`
	ComandaNumber *int            `json:"comanda_number,omitempty"`
	PaymentMethod PaymentMethod   `gorm:"type:varchar(20);not null" json:"payment_method"`
	CustomerName  string          `gorm:"type:varchar(255)" json:"customer_name,omitempty"`
}

type SaleItem struct {
	BaseModel
	SaleID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID string          `gorm:"type:varchar(64);not null;index" json:"product_id"`
	Name      string          `gorm:"type:varchar(255);not null" json:"name"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	LineTotal decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"line_total"`
}
