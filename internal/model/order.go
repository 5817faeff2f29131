package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
)

type OrderType string

const (
	OrderComanda OrderType = "comanda"
	OrderBalcao  OrderType = "balcao"
)

type OrderOrigin string

const (
	OriginCardapio OrderOrigin = "cardapio"
	OriginPDV      OrderOrigin = "pdv"
)

// Order is a kitchen ticket. ComandaNumber is the table for comanda orders
// and the counter sequence for balcao orders.
type Order struct {
	ID            string      `json:"id"`
	ComandaNumber int         `json:"comanda_number"`
	Items         []CartItem  `json:"items"`
	Status        OrderStatus `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
	ReadyAt       *time.Time  `json:"ready_at,omitempty"`
	OrderType     OrderType   `json:"order_type"`
	CustomerName  string      `json:"customer_name,omitempty"`
	Origin        OrderOrigin `json:"origin"`
}

func (o Order) Clone() Order {
	out := o
	out.Items = CloneItems(o.Items)
	if o.ReadyAt != nil {
		t := *o.ReadyAt
		out.ReadyAt = &t
	}
	return out
}

func (o Order) TotalItems() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

func (o Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

type TabStatus string

const (
	TabPreparing TabStatus = "preparing"
	TabPartial   TabStatus = "partial"
	TabReady     TabStatus = "ready"
)

// TableTab summarizes the open orders of one table for the POS overview
type TableTab struct {
	ComandaNumber int             `json:"comanda_number"`
	Orders        int             `json:"orders"`
	TotalItems    int             `json:"total_items"`
	Total         decimal.Decimal `json:"total"`
	Status        TabStatus       `json:"status"`
}
