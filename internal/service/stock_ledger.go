package service

import (
	"sort"
	"sync"

	"comanda-pos/internal/model"
)

// Deduction is one line of a stock plan. Fractional deductions are gated,
// unit deductions clamp at zero.
type Deduction struct {
	ProductID   string
	ProductName string
	Amount      float64
	Fractional  bool
}

// CommitFunc persists the movements of a plan before the ledger changes.
// Returning an error leaves the ledger untouched.
type CommitFunc func(movements []model.StockMovement) error

// StockLedger is the in-memory source of truth for remaining stock
type StockLedger struct {
	mu    sync.Mutex
	items map[string]*model.StockItem
}

func NewStockLedger() *StockLedger {
	return &StockLedger{items: make(map[string]*model.StockItem)}
}

// Track creates or replaces the ledger entry for a product
func (l *StockLedger) Track(item model.StockItem) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if item.Quantity < 0 {
		item.Quantity = 0
	}
	l.items[item.ProductID] = &item
}

func (l *StockLedger) Forget(productID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.items, productID)
}

// Rename keeps the display name in sync with catalog edits
func (l *StockLedger) Rename(productID, name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if item, ok := l.items[productID]; ok {
		item.ProductName = name
	}
}

func (l *StockLedger) Get(productID string) (model.StockItem, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	item, ok := l.items[productID]
	if !ok {
		return model.StockItem{}, false
	}
	return *item, true
}

// GetAvailable returns 0 for products without an entry
func (l *StockLedger) GetAvailable(productID string) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if item, ok := l.items[productID]; ok {
		return item.Quantity
	}
	return 0
}

// SetAbsolute overwrites the quantity and returns the previous one
func (l *StockLedger) SetAbsolute(productID string, quantity float64) (float64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	item, ok := l.items[productID]
	if !ok {
		return 0, ErrStockNotFound
	}
	if quantity < 0 {
		quantity = 0
	}
	previous := item.Quantity
	item.Quantity = quantity
	return previous, nil
}

// Adjust overwrites a quantity once commit has accepted the adjustment movement
func (l *StockLedger) Adjust(productID string, quantity float64, reference string, commit CommitFunc) (model.StockMovement, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	item, ok := l.items[productID]
	if !ok {
		return model.StockMovement{}, ErrStockNotFound
	}
	if quantity < 0 {
		quantity = 0
	}
	movement := model.StockMovement{
		ProductID:   productID,
		ProductName: item.ProductName,
		Type:        model.MovementAdjustment,
		Quantity:    quantity - item.Quantity,
		PreviousQty: item.Quantity,
		NewQty:      quantity,
		Reference:   reference,
	}
	if commit != nil {
		if err := commit([]model.StockMovement{movement}); err != nil {
			return model.StockMovement{}, err
		}
	}
	item.Quantity = quantity
	return movement, nil
}

func (l *StockLedger) SetMinQuantity(productID string, min float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	item, ok := l.items[productID]
	if !ok {
		return ErrStockNotFound
	}
	if min < 0 {
		min = 0
	}
	item.MinQuantity = min
	return nil
}

// DecreaseUnits never fails: missing entries are ignored and the result clamps at zero
func (l *StockLedger) DecreaseUnits(productID string, amount float64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if item, ok := l.items[productID]; ok {
		item.Quantity = clampedSub(item.Quantity, amount)
	}
}

func (l *StockLedger) CheckFractionalAvailable(productID string, volume float64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.availableLocked(productID) >= volume
}

// DecreaseFractional checks and decrements under one lock; false means nothing changed
func (l *StockLedger) DecreaseFractional(productID string, volume float64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	item, ok := l.items[productID]
	if !ok || item.Quantity < volume {
		return false
	}
	item.Quantity -= volume
	return true
}

// Missing returns the names of fractional deductions the ledger cannot cover right now
func (l *StockLedger) Missing(plan []Deduction) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.missingLocked(plan)
}

// Apply validates a whole plan, lets commit persist it, then mutates the ledger.
// Fractional needs are summed per product so two lines cannot each pass alone.
func (l *StockLedger) Apply(plan []Deduction, movementType model.MovementType, reference string, commit CommitFunc) ([]model.StockMovement, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if missing := l.missingLocked(plan); len(missing) > 0 {
		return nil, &InsufficientStockError{Missing: missing}
	}

	next := make(map[string]float64)
	var movements []model.StockMovement
	for _, d := range plan {
		item, ok := l.items[d.ProductID]
		if !ok {
			continue
		}
		previous, seen := next[d.ProductID]
		if !seen {
			previous = item.Quantity
		}
		updated := clampedSub(previous, d.Amount)
		next[d.ProductID] = updated
		movements = append(movements, model.StockMovement{
			ProductID:   d.ProductID,
			ProductName: item.ProductName,
			Type:        movementType,
			Quantity:    updated - previous,
			PreviousQty: previous,
			NewQty:      updated,
			Reference:   reference,
		})
	}

	if commit != nil {
		if err := commit(movements); err != nil {
			return nil, err
		}
	}

	for id, qty := range next {
		l.items[id].Quantity = qty
	}
	return movements, nil
}

// LowStockItems lists entries at or below their minimum, sorted by name
func (l *StockLedger) LowStockItems() []model.StockItem {
	l.mu.Lock()
	defer l.mu.Unlock()

	var low []model.StockItem
	for _, item := range l.items {
		if item.IsLow() {
			low = append(low, *item)
		}
	}
	sortByName(low)
	return low
}

func (l *StockLedger) Items() []model.StockItem {
	l.mu.Lock()
	defer l.mu.Unlock()

	items := make([]model.StockItem, 0, len(l.items))
	for _, item := range l.items {
		items = append(items, *item)
	}
	sortByName(items)
	return items
}

func (l *StockLedger) availableLocked(productID string) float64 {
	if item, ok := l.items[productID]; ok {
		return item.Quantity
	}
	return 0
}

func (l *StockLedger) missingLocked(plan []Deduction) []string {
	needed := make(map[string]float64)
	var order []string
	names := make(map[string]string)
	for _, d := range plan {
		if !d.Fractional {
			continue
		}
		if _, ok := needed[d.ProductID]; !ok {
			order = append(order, d.ProductID)
			names[d.ProductID] = d.ProductName
		}
		needed[d.ProductID] += d.Amount
	}

	var missing []string
	for _, id := range order {
		if l.availableLocked(id) < needed[id] {
			name := names[id]
			if item, ok := l.items[id]; ok && item.ProductName != "" {
				name = item.ProductName
			}
			if name == "" {
				name = id
			}
			missing = append(missing, name)
		}
	}
	return missing
}

func clampedSub(current, amount float64) float64 {
	if current-amount < 0 {
		return 0
	}
	return current - amount
}

func sortByName(items []model.StockItem) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].ProductName == items[j].ProductName {
			return items[i].ProductID < items[j].ProductID
		}
		return items[i].ProductName < items[j].ProductName
	})
}
