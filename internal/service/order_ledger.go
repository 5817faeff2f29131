package service

import (
	"log"
	"sort"
	"sync"
	"time"

	"comanda-pos/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderNotifier receives order lifecycle events after the ledger changed.
// Calls happen under the ledger lock, in ledger order, and must not block.
type OrderNotifier interface {
	OrderPlaced(order model.Order, preparingCount int)
	OrderReady(order model.Order, preparingCount int)
	OrderCleared(orderID string, preparingCount int)
}

// OrderLedger is the kitchen queue: preparing orders, then ready orders until cleared
type OrderLedger struct {
	mu            sync.Mutex
	preparing     []model.Order
	ready         []model.Order
	counterNumber int
	notifier      OrderNotifier
	now           func() time.Time
}

func NewOrderLedger(notifier OrderNotifier) *OrderLedger {
	return &OrderLedger{
		notifier: notifier,
		now:      time.Now,
	}
}

func (l *OrderLedger) SubmitTableOrder(items []model.CartItem, table int) (model.Order, error) {
	if table <= 0 {
		return model.Order{}, ErrInvalidTable
	}
	if len(items) == 0 {
		return model.Order{}, ErrEmptyCart
	}

	l.mu.Lock()
	order := model.Order{
		ID:            uuid.NewString(),
		ComandaNumber: table,
		Items:         model.CloneItems(items),
		Status:        model.OrderPreparing,
		CreatedAt:     l.now(),
		OrderType:     model.OrderComanda,
		Origin:        model.OriginCardapio,
	}
	l.preparing = append(l.preparing, order)
	l.notify(func(n OrderNotifier, count int) { n.OrderPlaced(order.Clone(), count) })
	l.mu.Unlock()

	log.Printf("order %s placed for table #%d (%d items)", order.ID, table, order.TotalItems())
	return order.Clone(), nil
}

// SubmitCounterOrder queues only the lines that need the kitchen. No order and no
// number are produced when nothing does.
func (l *OrderLedger) SubmitCounterOrder(items []model.CartItem, customerName string) (int, bool) {
	var kitchen []model.CartItem
	for _, item := range items {
		if item.Product.NeedsPreparation {
			kitchen = append(kitchen, item.Clone())
		}
	}
	if len(kitchen) == 0 {
		return 0, false
	}

	l.mu.Lock()
	l.counterNumber++
	order := model.Order{
		ID:            uuid.NewString(),
		ComandaNumber: l.counterNumber,
		Items:         kitchen,
		Status:        model.OrderPreparing,
		CreatedAt:     l.now(),
		OrderType:     model.OrderBalcao,
		CustomerName:  customerName,
		Origin:        model.OriginPDV,
	}
	l.preparing = append(l.preparing, order)
	l.notify(func(n OrderNotifier, count int) { n.OrderPlaced(order.Clone(), count) })
	l.mu.Unlock()

	log.Printf("counter order #%d placed (%d items)", order.ComandaNumber, order.TotalItems())
	return order.ComandaNumber, true
}

// MarkReady moves a preparing order to the ready collection. An order that is
// already ready is returned unchanged; false means the id is unknown.
func (l *OrderLedger) MarkReady(orderID string) (model.Order, bool) {
	l.mu.Lock()
	for _, order := range l.ready {
		if order.ID == orderID {
			l.mu.Unlock()
			return order.Clone(), true
		}
	}

	idx := indexOfOrder(l.preparing, orderID)
	if idx < 0 {
		l.mu.Unlock()
		return model.Order{}, false
	}

	order := l.preparing[idx]
	l.preparing = append(l.preparing[:idx], l.preparing[idx+1:]...)
	readyAt := l.now()
	order.Status = model.OrderReady
	order.ReadyAt = &readyAt
	l.ready = append(l.ready, order)
	l.notify(func(n OrderNotifier, count int) { n.OrderReady(order.Clone(), count) })
	l.mu.Unlock()

	log.Printf("order %s (%s #%d) ready", order.ID, order.OrderType, order.ComandaNumber)
	return order.Clone(), true
}

// ClearReadyOrder drops a ready order for good
func (l *OrderLedger) ClearReadyOrder(orderID string) bool {
	l.mu.Lock()
	idx := indexOfOrder(l.ready, orderID)
	if idx < 0 {
		l.mu.Unlock()
		return false
	}
	l.ready = append(l.ready[:idx], l.ready[idx+1:]...)
	l.notify(func(n OrderNotifier, count int) { n.OrderCleared(orderID, count) })
	l.mu.Unlock()
	return true
}

// SettleTable clears the billed orders of a table that are ready. Orders
// outside billed stay put. It also reports whether the table still has
// orders cooking.
func (l *OrderLedger) SettleTable(table int, billed []string) (cleared []string, stillPreparing bool) {
	ids := make(map[string]bool, len(billed))
	for _, id := range billed {
		ids[id] = true
	}

	l.mu.Lock()
	kept := l.ready[:0]
	for _, order := range l.ready {
		if isTableOrder(order, table) && ids[order.ID] {
			cleared = append(cleared, order.ID)
			continue
		}
		kept = append(kept, order)
	}
	l.ready = kept
	for _, order := range l.preparing {
		if isTableOrder(order, table) {
			stillPreparing = true
			break
		}
	}
	for _, id := range cleared {
		l.notify(func(n OrderNotifier, count int) { n.OrderCleared(id, count) })
	}
	l.mu.Unlock()
	return cleared, stillPreparing
}

// OrdersForTable returns preparing then ready comanda orders of a table
func (l *OrderLedger) OrdersForTable(table int) []model.Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	var orders []model.Order
	for _, order := range l.preparing {
		if isTableOrder(order, table) {
			orders = append(orders, order.Clone())
		}
	}
	for _, order := range l.ready {
		if isTableOrder(order, table) {
			orders = append(orders, order.Clone())
		}
	}
	return orders
}

func (l *OrderLedger) Find(orderID string) (model.Order, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if idx := indexOfOrder(l.preparing, orderID); idx >= 0 {
		return l.preparing[idx].Clone(), true
	}
	if idx := indexOfOrder(l.ready, orderID); idx >= 0 {
		return l.ready[idx].Clone(), true
	}
	return model.Order{}, false
}

func (l *OrderLedger) Preparing() []model.Order {
	l.mu.Lock()
	defer l.mu.Unlock()
	return cloneOrders(l.preparing)
}

func (l *OrderLedger) Ready() []model.Order {
	l.mu.Lock()
	defer l.mu.Unlock()
	return cloneOrders(l.ready)
}

func (l *OrderLedger) PreparingCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.preparing)
}

// ReadyTableOrders is what the TV shows: ready comanda orders only
func (l *OrderLedger) ReadyTableOrders() []model.Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	var orders []model.Order
	for _, order := range l.ready {
		if order.OrderType == model.OrderComanda {
			orders = append(orders, order.Clone())
		}
	}
	return orders
}

// TableTabs groups open comanda orders by table for the POS overview
func (l *OrderLedger) TableTabs() []model.TableTab {
	l.mu.Lock()
	defer l.mu.Unlock()

	type acc struct {
		tab       model.TableTab
		preparing int
		ready     int
	}
	byTable := make(map[int]*acc)
	add := func(order model.Order) {
		if order.OrderType != model.OrderComanda {
			return
		}
		a, ok := byTable[order.ComandaNumber]
		if !ok {
			a = &acc{tab: model.TableTab{ComandaNumber: order.ComandaNumber, Total: decimal.Zero}}
			byTable[order.ComandaNumber] = a
		}
		a.tab.Orders++
		a.tab.TotalItems += order.TotalItems()
		a.tab.Total = a.tab.Total.Add(order.Total())
		if order.Status == model.OrderReady {
			a.ready++
		} else {
			a.preparing++
		}
	}
	for _, order := range l.preparing {
		add(order)
	}
	for _, order := range l.ready {
		add(order)
	}

	tabs := make([]model.TableTab, 0, len(byTable))
	for _, a := range byTable {
		switch {
		case a.preparing == 0:
			a.tab.Status = model.TabReady
		case a.ready == 0:
			a.tab.Status = model.TabPreparing
		default:
			a.tab.Status = model.TabPartial
		}
		tabs = append(tabs, a.tab)
	}
	sort.Slice(tabs, func(i, j int) bool { return tabs[i].ComandaNumber < tabs[j].ComandaNumber })
	return tabs
}

// notify must be called with l.mu held so events leave in the order the ledger changed
func (l *OrderLedger) notify(fn func(n OrderNotifier, preparingCount int)) {
	if l.notifier != nil {
		fn(l.notifier, len(l.preparing))
	}
}

func isTableOrder(order model.Order, table int) bool {
	return order.OrderType == model.OrderComanda && order.ComandaNumber == table
}

func indexOfOrder(orders []model.Order, id string) int {
	for i, order := range orders {
		if order.ID == id {
			return i
		}
	}
	return -1
}

func cloneOrders(orders []model.Order) []model.Order {
	out := make([]model.Order, len(orders))
	for i, order := range orders {
		out[i] = order.Clone()
	}
	return out
}
