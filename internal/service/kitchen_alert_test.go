package service

import "testing"

func TestKitchenAlerter_Observe(t *testing.T) {
	a := NewKitchenAlerter()

	steps := []struct {
		count int
		ring  bool
	}{
		{3, false}, // baseline
		{3, false},
		{4, true},
		{2, false},
		{2, false},
		{5, true},
	}
	for i, s := range steps {
		if got := a.Observe(s.count); got != s.ring {
			t.Errorf("step %d: Observe(%d) = %v, want %v", i, s.count, got, s.ring)
		}
	}
}

func TestKitchenAlerter_FirstObservationNeverRings(t *testing.T) {
	if NewKitchenAlerter().Observe(10) {
		t.Error("first observation should only prime the baseline")
	}
}
