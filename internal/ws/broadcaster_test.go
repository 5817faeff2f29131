package ws

import (
	"encoding/json"
	"testing"
	"time"

	"comanda-pos/internal/model"
)

func receive(t *testing.T, ch <-chan []byte) Event {
	t.Helper()
	select {
	case msg := <-ch:
		var event Event
		if err := json.Unmarshal(msg, &event); err != nil {
			t.Fatalf("invalid event %s: %v", msg, err)
		}
		return event
	case <-time.After(time.Second):
		t.Fatal("no event published")
	}
	return Event{}
}

func TestBroadcaster_OrderEvents(t *testing.T) {
	ch := make(chan []byte, 4)
	b := newBroadcaster(ch)

	b.OrderPlaced(model.Order{ID: "o-1", ComandaNumber: 12, OrderType: model.OrderComanda}, 3)
	event := receive(t, ch)
	if event.Type != EventOrderPlaced || *event.PreparingCount != 3 || event.Order.ID != "o-1" {
		t.Errorf("unexpected event %+v", event)
	}
	if event.Message != "new order for table #12" {
		t.Errorf("unexpected message %q", event.Message)
	}

	b.OrderPlaced(model.Order{ID: "o-2", ComandaNumber: 1, OrderType: model.OrderBalcao}, 4)
	if event := receive(t, ch); event.Message != "new order for counter #1" {
		t.Errorf("unexpected message %q", event.Message)
	}

	b.OrderCleared("o-1", 0)
	event = receive(t, ch)
	if event.Type != EventOrderCleared || event.OrderID != "o-1" || event.PreparingCount == nil || *event.PreparingCount != 0 {
		t.Errorf("unexpected event %+v", event)
	}
}

func TestBroadcaster_StockChanged(t *testing.T) {
	ch := make(chan []byte, 1)
	b := newBroadcaster(ch)

	b.StockChanged([]model.StockMovement{{ProductID: "refri-lata", NewQty: 48}})
	event := receive(t, ch)
	if event.Type != EventStockUpdate || len(event.Movements) != 1 || event.Movements[0].NewQty != 48 {
		t.Errorf("unexpected event %+v", event)
	}
}

func TestBroadcaster_KeepsCallOrder(t *testing.T) {
	ch := make(chan []byte)
	b := newBroadcaster(ch)

	const total = 200
	for i := 1; i <= total; i++ {
		b.OrderPlaced(model.Order{ID: "o", ComandaNumber: i, OrderType: model.OrderComanda}, i)
	}
	for i := 1; i <= total; i++ {
		event := receive(t, ch)
		if *event.PreparingCount != i {
			t.Fatalf("event %d arrived with preparing count %d", i, *event.PreparingCount)
		}
	}
}

func TestBroadcaster_DoesNotBlockOnSlowHub(t *testing.T) {
	ch := make(chan []byte)
	b := newBroadcaster(ch)

	done := make(chan struct{})
	go func() {
		b.OrderReady(model.Order{ID: "o-1"}, 0)
		b.OrderCleared("o-1", 0)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publishing blocked while nobody reads")
	}

	if event := receive(t, ch); event.Type != EventOrderReady {
		t.Errorf("expected ready first, got %s", event.Type)
	}
	if event := receive(t, ch); event.Type != EventOrderCleared {
		t.Errorf("expected cleared second, got %s", event.Type)
	}
}

func TestSnapshot(t *testing.T) {
	var event Event
	if err := json.Unmarshal(Snapshot(2), &event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.Type != EventSnapshot || *event.PreparingCount != 2 {
		t.Errorf("unexpected snapshot %+v", event)
	}
}
