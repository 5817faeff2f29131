package service

import (
	"context"
	"fmt"
	"log"
	"sync"

	"comanda-pos/internal/model"
	"comanda-pos/internal/repository"

	"github.com/google/uuid"
)

// StockNotifier is told about committed stock movements
type StockNotifier interface {
	StockChanged(movements []model.StockMovement)
}

type SettleRequest struct {
	PaymentMethod model.PaymentMethod `json:"payment_method" validate:"required"`
	CustomerName  string              `json:"customer_name" validate:"max=255"`
}

// Settlement is the outcome of a counter checkout
type Settlement struct {
	Sale          *model.Sale `json:"sale"`
	CounterNumber *int        `json:"counter_number,omitempty"`
	ClearedOrders []string    `json:"cleared_orders,omitempty"`
	Warnings      []string    `json:"warnings,omitempty"`
}

// LoadedTab is a table's bill as loaded into a counter cart
type LoadedTab struct {
	ComandaNumber int              `json:"comanda_number"`
	Items         []model.CartItem `json:"items"`
	Orders        []model.Order    `json:"orders"`
	Warnings      []string         `json:"warnings,omitempty"`
}

type CheckoutService interface {
	SubmitTable(ctx context.Context, cart *model.Cart, table int) (model.Order, error)
	LoadTable(cart *model.Cart, table int) (*LoadedTab, error)
	Settle(ctx context.Context, cart *model.Cart, req *SettleRequest) (*Settlement, error)
	CheckAvailability(selected []model.SelectedIngredient, qty int) error
}

type checkoutService struct {
	// serialises submissions and settlements so validation, commit and
	// order reconciliation run as one unit
	mu        sync.Mutex
	stock     *StockLedger
	orders    *OrderLedger
	sales     repository.SaleRepository
	movements repository.MovementRepository
	notifier  StockNotifier
}

func NewCheckoutService(stock *StockLedger, orders *OrderLedger, sales repository.SaleRepository, movements repository.MovementRepository, notifier StockNotifier) CheckoutService {
	return &checkoutService{
		stock:     stock,
		orders:    orders,
		sales:     sales,
		movements: movements,
		notifier:  notifier,
	}
}

// SubmitTable sends a table cart to the kitchen. Ingredient stock of composite
// and portion lines is taken now; whole units wait for settlement. No sale is recorded.
func (s *checkoutService) SubmitTable(ctx context.Context, cart *model.Cart, table int) (model.Order, error) {
	if table <= 0 {
		return model.Order{}, ErrInvalidTable
	}
	if len(cart.Items) == 0 {
		return model.Order{}, ErrEmptyCart
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := model.CloneItems(cart.Items)
	if plan := tableSubmissionPlan(items); len(plan) > 0 {
		reference := fmt.Sprintf("table #%d", table)
		movements, err := s.stock.Apply(plan, model.MovementTableOrder, reference, func(mv []model.StockMovement) error {
			return s.movements.Record(ctx, mv)
		})
		if err != nil {
			log.Printf("table #%d order rejected: %v", table, err)
			return model.Order{}, err
		}
		s.notifyStock(movements)
	}
	for i := range items {
		if items[i].TracksIngredients() {
			items[i].IngredientsDeducted = true
		}
	}

	order, err := s.orders.SubmitTableOrder(items, table)
	if err != nil {
		return model.Order{}, err
	}
	cart.Clear()
	return order, nil
}

// LoadTable replaces the counter cart with everything the table has ordered
func (s *checkoutService) LoadTable(cart *model.Cart, table int) (*LoadedTab, error) {
	if table <= 0 {
		return nil, ErrInvalidTable
	}
	orders := s.orders.OrdersForTable(table)
	if len(orders) == 0 {
		return nil, &NoOrdersError{Table: table}
	}

	tab := &LoadedTab{
		ComandaNumber: table,
		Items:         aggregateTab(orders),
		Orders:        orders,
	}
	preparing := 0
	for _, order := range orders {
		if order.Status == model.OrderPreparing {
			preparing++
		}
	}
	if preparing > 0 {
		tab.Warnings = append(tab.Warnings, fmt.Sprintf("table #%d has %d order(s) still in preparation", table, preparing))
	}

	ids := make([]string, 0, len(orders))
	for _, order := range orders {
		ids = append(ids, order.ID)
	}
	cart.LoadTab(table, tab.Items, ids)
	return tab, nil
}

// Settle records the sale, deducts stock and reconciles kitchen orders, or does nothing at all
func (s *checkoutService) Settle(ctx context.Context, cart *model.Cart, req *SettleRequest) (*Settlement, error) {
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if !req.PaymentMethod.Valid() {
		return nil, ErrInvalidPaymentMethod
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sale := buildSale(cart, req)
	reference := "sale " + sale.ID.String()
	movements, err := s.stock.Apply(settlementPlan(cart.Items), model.MovementSale, reference, func(mv []model.StockMovement) error {
		return s.sales.CreateWithMovements(ctx, sale, mv)
	})
	if err != nil {
		log.Printf("settlement rejected: %v", err)
		return nil, err
	}
	s.notifyStock(movements)

	result := &Settlement{Sale: sale}
	if table := cart.ComandaNumber; table > 0 {
		cleared, stillPreparing := s.orders.SettleTable(table, cart.TabOrders)
		result.ClearedOrders = cleared
		if stillPreparing {
			result.Warnings = append(result.Warnings, fmt.Sprintf("table #%d still has orders in preparation", table))
		}
		if unbilled := unbilledReady(s.orders.OrdersForTable(table)); unbilled > 0 {
			result.Warnings = append(result.Warnings, fmt.Sprintf("table #%d has %d ready order(s) not on this bill, reload the tab", table, unbilled))
			log.Printf("table #%d settled with %d unbilled ready order(s)", table, unbilled)
		}
	} else if number, ok := s.orders.SubmitCounterOrder(cart.Items, sale.CustomerName); ok {
		result.CounterNumber = &number
	}

	log.Printf("sale %s settled: %s %s via %s", sale.ID, sale.Type, sale.Total.StringFixed(2), sale.PaymentMethod)
	cart.Clear()
	return result, nil
}

// CheckAvailability gates a composite or portion line against fractional stock
func (s *checkoutService) CheckAvailability(selected []model.SelectedIngredient, qty int) error {
	if missing := s.stock.Missing(IngredientDeductions(selected, qty)); len(missing) > 0 {
		return &InsufficientStockError{Missing: missing}
	}
	return nil
}

func (s *checkoutService) notifyStock(movements []model.StockMovement) {
	if s.notifier != nil && len(movements) > 0 {
		s.notifier.StockChanged(movements)
	}
}

func unbilledReady(orders []model.Order) int {
	n := 0
	for _, order := range orders {
		if order.Status == model.OrderReady {
			n++
		}
	}
	return n
}

func buildSale(cart *model.Cart, req *SettleRequest) *model.Sale {
	sale := &model.Sale{
		Total:         cart.TotalPrice(),
		Type:          model.SalePDV,
		PaymentMethod: req.PaymentMethod,
		CustomerName:  req.CustomerName,
	}
	sale.ID = uuid.New()
	if sale.CustomerName == "" {
		sale.CustomerName = cart.CustomerName
	}
	if cart.ComandaNumber > 0 {
		table := cart.ComandaNumber
		sale.Type = model.SaleComanda
		sale.ComandaNumber = &table
	}
	for _, item := range cart.Items {
		sale.Items = append(sale.Items, model.SaleItem{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.Product.Price,
			LineTotal: item.LineTotal(),
		})
	}
	return sale
}

// aggregateTab sums a table's lines by product. Ingredient-tracked lines were
// already deducted at submission and are marked so settlement skips them.
func aggregateTab(orders []model.Order) []model.CartItem {
	index := make(map[string]int)
	var items []model.CartItem
	for _, order := range orders {
		for _, line := range order.Items {
			if i, ok := index[line.Product.ID]; ok {
				items[i].Quantity += line.Quantity
				continue
			}
			index[line.Product.ID] = len(items)
			items = append(items, model.CartItem{
				Product:             line.Product,
				Quantity:            line.Quantity,
				IsComposite:         line.IsComposite,
				CompositeID:         line.CompositeID,
				PortionID:           line.PortionID,
				IngredientsDeducted: line.IngredientsDeducted || line.TracksIngredients() || line.IsComposite,
			})
		}
	}
	return items
}
