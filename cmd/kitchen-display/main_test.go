package main

import (
	"bytes"
	"strings"
	"testing"

	"comanda-pos/internal/service"
	"comanda-pos/internal/ws"
)

func TestHandleMessage(t *testing.T) {
	alerter := service.NewKitchenAlerter()
	var out bytes.Buffer

	if handleMessage(alerter, ws.Snapshot(2), &out) {
		t.Error("snapshot only primes the baseline")
	}

	placed := []byte(`{"type":"order_placed","preparing_count":3,"message":"new order for table #4",` +
		`"order":{"id":"o-1","items":[{"product":{"name":"X-Burguer"},"quantity":2,"observation":"sem cebola"}]}}`)
	if !handleMessage(alerter, placed, &out) {
		t.Error("a growing queue should ring")
	}
	if !strings.Contains(out.String(), "2x X-Burguer / sem cebola") {
		t.Errorf("order lines not printed:\n%s", out.String())
	}

	ready := []byte(`{"type":"order_ready","preparing_count":2,"order":{"id":"o-1"}}`)
	if handleMessage(alerter, ready, &out) {
		t.Error("a shrinking queue should not ring")
	}
	if handleMessage(alerter, []byte("not json"), &out) {
		t.Error("malformed events are ignored")
	}
}

func TestHandleMessageStockEventsDoNotRing(t *testing.T) {
	alerter := service.NewKitchenAlerter()
	alerter.Observe(1)

	var out bytes.Buffer
	msg := []byte(`{"type":"stock_update","movements":[{"product_id":"refri-lata"}]}`)
	if handleMessage(alerter, msg, &out) {
		t.Error("stock updates carry no count and never ring")
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
}
