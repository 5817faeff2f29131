package ws

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"comanda-pos/internal/model"
)

// Event types pushed to kitchen, POS and TV screens
const (
	EventSnapshot     = "snapshot"
	EventOrderPlaced  = "order_placed"
	EventOrderReady   = "order_ready"
	EventOrderCleared = "order_cleared"
	EventStockUpdate  = "stock_update"
)

// Event is the envelope of every message on /ws
type Event struct {
	Type           string                `json:"type"`
	PreparingCount *int                  `json:"preparing_count,omitempty"`
	Order          *model.Order          `json:"order,omitempty"`
	OrderID        string                `json:"order_id,omitempty"`
	Movements      []model.StockMovement `json:"movements,omitempty"`
	Message        string                `json:"message,omitempty"`
}

// Broadcaster turns ledger events into hub messages. Events are queued
// without blocking the caller and forwarded one at a time, in call order.
type Broadcaster struct {
	out   chan<- []byte
	mu    sync.Mutex
	queue [][]byte
	wake  chan struct{}
}

func NewBroadcaster(hub *Hub) *Broadcaster {
	return newBroadcaster(hub.Broadcast)
}

func newBroadcaster(out chan<- []byte) *Broadcaster {
	b := &Broadcaster{
		out:  out,
		wake: make(chan struct{}, 1),
	}
	go b.run()
	return b
}

func (b *Broadcaster) OrderPlaced(order model.Order, preparingCount int) {
	label := fmt.Sprintf("table #%d", order.ComandaNumber)
	if order.OrderType == model.OrderBalcao {
		label = fmt.Sprintf("counter #%d", order.ComandaNumber)
	}
	b.publish(Event{
		Type:           EventOrderPlaced,
		PreparingCount: &preparingCount,
		Order:          &order,
		Message:        "new order for " + label,
	})
}

func (b *Broadcaster) OrderReady(order model.Order, preparingCount int) {
	b.publish(Event{
		Type:           EventOrderReady,
		PreparingCount: &preparingCount,
		Order:          &order,
	})
}

func (b *Broadcaster) OrderCleared(orderID string, preparingCount int) {
	b.publish(Event{
		Type:           EventOrderCleared,
		PreparingCount: &preparingCount,
		OrderID:        orderID,
	})
}

func (b *Broadcaster) StockChanged(movements []model.StockMovement) {
	b.publish(Event{
		Type:      EventStockUpdate,
		Movements: movements,
	})
}

func (b *Broadcaster) publish(event Event) {
	msg, err := json.Marshal(event)
	if err != nil {
		log.Printf("ws: failed to encode %s event: %v", event.Type, err)
		return
	}
	b.mu.Lock()
	b.queue = append(b.queue, msg)
	b.mu.Unlock()

	select {
	case b.wake <- struct{}{}:
	default:
	}
}

func (b *Broadcaster) run() {
	for range b.wake {
		for {
			b.mu.Lock()
			if len(b.queue) == 0 {
				b.mu.Unlock()
				break
			}
			msg := b.queue[0]
			b.queue[0] = nil
			b.queue = b.queue[1:]
			b.mu.Unlock()

			b.out <- msg
		}
	}
}

// Snapshot encodes the message sent to a freshly connected screen
func Snapshot(preparingCount int) []byte {
	msg, _ := json.Marshal(Event{Type: EventSnapshot, PreparingCount: &preparingCount})
	return msg
}
